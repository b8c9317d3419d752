package apis

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/objectifiedsrv/internal/httpx"
	"github.com/tidwall/gjson"
)

// pathId parses the {id} path parameter. Range checks are left to the services.
func pathId(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, httpx.ErrInvalidId()
	}
	return id, nil
}

// queryId parses an optional numeric filter. An absent filter is 0, meaning no filter.
func queryId(r *http.Request, name string) (int64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, errInvalidFilter(name)
	}
	return id, nil
}

func readJsonObject(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, httpx.ErrInvalidRequest()
	}
	req, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, httpx.ErrUnableToReadRequest()
	}
	if !gjson.ValidBytes(req) {
		return nil, httpx.ErrInvalidRequest("unable to parse request")
	}
	if !gjson.ParseBytes(req).IsObject() {
		return nil, errNotAnObject()
	}
	return req, nil
}

// decodeInto unmarshals the request body over dst, so defaults already set in dst survive
// for attributes the body leaves out.
func decodeInto(req []byte, dst any) error {
	if err := json.Unmarshal(req, dst); err != nil {
		return httpx.ErrInvalidRequest("unable to parse request: " + err.Error())
	}
	return nil
}

// bodyIdMatches reports whether the optional "id" attribute of req agrees with id.
func bodyIdMatches(req []byte, id int64) bool {
	v := gjson.GetBytes(req, "id")
	if !v.Exists() || v.Type == gjson.Null {
		return true
	}
	return v.Type == gjson.Number && v.Int() == id
}
