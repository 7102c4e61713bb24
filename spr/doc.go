// Package spr reads source character images and writes sprite sheets.
//
// Sources are decoded by content rather than by file extension, so besides
// PNG it also accepts JPEG, GIF, BMP, TIFF and WebP data. Sheets are always
// written as PNG with deterministic encoder settings, through a temporary
// file that is renamed into place once fully written.
//
// Every error returned by this package is an *Error carrying a Kind, so
// callers can tell unreadable files from undecodable and unwritable ones.
package spr
