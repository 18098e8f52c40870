package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/dmitrymomot/sendemail/core/logger"
	"github.com/dmitrymomot/sendemail/core/response"
)

// maxBodySize caps request bodies accepted by the HTTP adapter.
const maxBodySize = 1 << 20

type httpOptions struct {
	requestID func(r *http.Request) string
}

// HTTPOption configures the adapter returned by HTTPHandler.
type HTTPOption func(*httpOptions)

// WithRequestIDFunc sets how the adapter derives a request id.
// The default reads the X-Request-Id header.
func WithRequestIDFunc(fn func(r *http.Request) string) HTTPOption {
	return func(o *httpOptions) {
		if fn != nil {
			o.requestID = fn
		}
	}
}

// HTTPHandler exposes h as a net/http handler for local runs and
// non-Lambda hosting. Each request is converted to an API Gateway proxy
// event and the resulting proxy response is written back verbatim.
func (h *Handler) HTTPHandler(opts ...HTTPOption) http.Handler {
	o := &httpOptions{
		requestID: func(r *http.Request) string { return r.Header.Get("X-Request-Id") },
	}
	for _, opt := range opts {
		opt(o)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
		if err != nil {
			h.logger.Warn("failed to read request body",
				logger.Component("http"),
				logger.Error(err),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
			)
			writeProxyResponse(w, h.logger, invalidBodyResponse())
			return
		}

		event := events.APIGatewayProxyRequest{
			Resource:              r.URL.Path,
			Path:                  r.URL.Path,
			HTTPMethod:            r.Method,
			Headers:               singleValues(r.Header),
			MultiValueHeaders:     r.Header,
			QueryStringParameters: singleValues(r.URL.Query()),
			Body:                  string(body),
			RequestContext: events.APIGatewayProxyRequestContext{
				RequestID:  o.requestID(r),
				HTTPMethod: r.Method,
				Path:       r.URL.Path,
			},
		}

		resp, _ := h.HandleRequest(r.Context(), event)
		writeProxyResponse(w, h.logger, resp)
	})
}

func invalidBodyResponse() events.APIGatewayProxyResponse {
	resp, err := response.New(response.ErrInvalidJSON.Status, response.ErrInvalidJSON.Envelope())
	if err != nil {
		return response.Fallback()
	}
	return resp
}

func writeProxyResponse(w http.ResponseWriter, log *slog.Logger, resp events.APIGatewayProxyResponse) {
	header := w.Header()
	for k, v := range resp.Headers {
		header.Set(k, v)
	}
	for k, vs := range resp.MultiValueHeaders {
		for _, v := range vs {
			header.Add(k, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.WriteString(w, resp.Body); err != nil {
		log.Debug("failed to write response body", logger.Component("http"), logger.Error(err))
	}
}

func singleValues(m map[string][]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, vs := range m {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
