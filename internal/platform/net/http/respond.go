package http

import (
	"encoding/json"
	stdhttp "net/http"
	"strconv"

	pnet "knownkey/internal/platform/net"
)

// JSON encodes v with status; the charset marks envelope replies
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONRaw writes pre-encoded JSON byte for byte under plain application/json
// the translator answers this way so clients see exactly {"id":...}
func JSONRaw(w stdhttp.ResponseWriter, status int, body []byte) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// RespondError writes err as the error envelope with its mapped status
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, body := pnet.Error(err, pnet.RequestID(r.Context()))
	JSON(w, status, body)
}

// Response is what return-style handlers hand back
// an error Body is written with RespondError whatever Status says
type Response struct {
	Status int // 0 is 200
	Body   any
	Header stdhttp.Header
	// Bare skips the envelope
	Bare bool
}

// Bare is a 200 written without the envelope
func Bare(data any) Response { return Response{Body: data, Bare: true} }

// NoContent is a 204
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Handle adapts a return-style handler
func Handle(h func(*stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { h(r).write(w, r) }
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	status := resp.Status
	switch {
	case status == 0:
		status = stdhttp.StatusOK
	case status == stdhttp.StatusNoContent:
		w.WriteHeader(status)
		return
	}
	if resp.Bare {
		JSON(w, status, resp.Body)
		return
	}
	JSON(w, status, pnet.Reply(status, resp.Body, pnet.RequestID(r.Context())))
}
