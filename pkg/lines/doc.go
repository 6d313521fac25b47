// Package lines splits a byte stream into newline terminated frames.
package lines

// A Reader keeps partial frames in a fixed-capacity ring between calls, so
// the memory used for framing is decided once at construction and never
// grows. Sources may deliver any number of bytes per read, from single bytes
// (a UART draining its FIFO) to several frames at once; each ReadLine call
// hands out at most one frame and leaves the rest buffered.
//
// Producer: serial peripherals (GPS receivers, debug consoles)
// Consumer: sentence parsers, telemetry
