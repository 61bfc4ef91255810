package cookie

import "net/http"

// Writer is a ResponseWriter that remembers whether the response headers were sent.
type Writer struct {
	http.ResponseWriter
	headersSent bool
}

// Track wraps w. Wrapping an already tracked writer returns it unchanged.
func Track(w http.ResponseWriter) *Writer {
	if tw, ok := w.(*Writer); ok {
		return tw
	}
	return &Writer{ResponseWriter: w}
}

func (w *Writer) WriteHeader(code int) {
	w.headersSent = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *Writer) Write(p []byte) (int, error) {
	w.headersSent = true
	return w.ResponseWriter.Write(p)
}

func (w *Writer) Flush() {
	w.headersSent = true
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// HeadersSent reports whether Set-Cookie can no longer reach the client.
func (w *Writer) HeadersSent() bool {
	return w.headersSent
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *Writer) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
