// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package upload implements the document upload flow.
//
// One upload runs at a time. A duplicate on the server is a soft
// failure: the document still joins the local recent-documents list so
// the user can ask about it, with a notice instead of an error.
package upload
