// Package docs serves the OpenAPI document and a Swagger UI page for it.
package docs

import (
	_ "embed"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/objectifiedsrv/internal/httpx"
	"github.com/rs/zerolog/log"
	"sigs.k8s.io/yaml"
)

//go:embed openapi.yaml
var openapiYaml []byte

//go:embed index.html
var indexHtml string

var (
	jsonOnce sync.Once
	jsonDoc  []byte
	jsonErr  error
)

// OpenAPIJson returns the OpenAPI document converted to JSON.
func OpenAPIJson() ([]byte, error) {
	jsonOnce.Do(func() {
		jsonDoc, jsonErr = yaml.YAMLToJSON(openapiYaml)
	})
	return jsonDoc, jsonErr
}

// Router serves the docs under basePath, the path the router is mounted at.
func Router(basePath string) func(r chi.Router) {
	page := []byte(strings.ReplaceAll(indexHtml, "{{SPEC_URL}}", strings.TrimSuffix(basePath, "/")+"/openapi.json"))
	return func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(page)
		})
		r.Get("/openapi.yaml", serveYaml)
		r.Get("/openapi.json", serveJson)
	}
}

func serveYaml(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openapiYaml)
}

func serveJson(w http.ResponseWriter, r *http.Request) {
	doc, err := OpenAPIJson()
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("unable to convert openapi document")
		httpx.ErrApplicationError().Send(w)
		return
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, doc)
}
