// Package vtcore is the in-memory data model of a VT-style terminal screen:
// a grid of cells with attributes, a scroll-back history, and the
// DEC/ECMA-48/xterm-compatible parser that turns a byte stream of control
// sequences into parsed sequence records.
//
// vtcore deliberately stops short of being a terminal emulator. It has no
// opinion on pseudo-terminal I/O, on how parsed sequences become cursor
// moves and mode changes, or on how a page gets drawn to a screen — those
// are the job of a dispatcher and a renderer layered on top. What vtcore
// owns is the grid itself (Page, Line, History, Cell), the character model
// (Character, with unbounded combining-mark support), and the parser that turns
// bytes into Sequence records for that dispatcher to act on.
//
// The core is single-threaded and synchronous: no exported type here may be
// called concurrently from more than one goroutine without external
// synchronization, and nothing allocates in the background or blocks.
package vtcore
