// Package termimg renders raster images in a terminal: natively through
// the kitty graphics protocol, or degraded to colored half-block cells for
// terminals without graphics support. The choice is made once at startup
// via Supported, not per frame.
package termimg

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

// chunkSize is the number of base64 payload bytes carried per frame.
const chunkSize = 4096

const (
	frameStart = "\x1b_G"
	frameEnd   = "\x1b\\"
)

// Encode serializes PNG-encoded image bytes into a kitty graphics escape
// stream: the payload is base64-encoded and split into chunkSize-byte
// frames. The first frame carries the transmit action and format
// (a=T,f=100); every frame except the last carries the continuation flag
// m=1, the last m=0. Frames are only meaningful delivered unbroken and in
// order, so the stream must be written by a single writer.
//
// Empty input yields an empty stream; callers fall back to EncodeFallback.
func Encode(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	payload := base64.StdEncoding.EncodeToString(data)
	var buf bytes.Buffer
	first := true
	for len(payload) > 0 {
		n := min(len(payload), chunkSize)
		chunk := payload[:n]
		payload = payload[n:]

		m := 0
		if len(payload) > 0 {
			m = 1
		}

		buf.WriteString(frameStart)
		if first {
			fmt.Fprintf(&buf, "a=T,f=100,m=%d", m)
			first = false
		} else {
			fmt.Fprintf(&buf, "m=%d", m)
		}
		buf.WriteByte(';')
		buf.WriteString(chunk)
		buf.WriteString(frameEnd)
	}
	return buf.Bytes()
}
