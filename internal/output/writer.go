package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// FrameWriter is the interface for writing frames to output.
type FrameWriter interface {
	// WriteFrame writes a single frame to the output.
	WriteFrame(f Frame) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg: JSON or text.
func NewWriter(w io.Writer, cfg *config.Config) FrameWriter {
	if cfg.JSONFormat {
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes frames as a text board followed by the messages.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteFrame renders the board and messages.
func (tw *TextWriter) WriteFrame(f Frame) error {
	RenderBoard(tw.w, f, tw.cfg)
	RenderMessages(tw.w, f.Messages, tw.cfg)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes frames in JSON format.
// It buffers frames and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	frames []*JSONFrame
	single bool // If true, write each frame immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches frames into an array.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each frame immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteFrame buffers a frame for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteFrame(f Frame) error {
	if jw.single {
		return OutputFrameJSON(jw.w, f)
	}
	jw.frames = append(jw.frames, FrameToJSON(f))
	return nil
}

// Flush writes all buffered frames as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.frames) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Frames: jw.frames})

	jw.frames = jw.frames[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
