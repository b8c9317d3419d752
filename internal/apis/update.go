package apis

import (
	"net/http"

	"github.com/mugiliam/objectifiedsrv/internal/httpx"
)

// updateObject replaces the mutable attributes of an entity. Attributes missing from the body
// take their defaults, so an edit without "enabled" leaves the entity enabled.
func (rs resource[T]) updateObject(r *http.Request) (*httpx.Response, error) {
	id, err := pathId(r)
	if err != nil {
		return nil, err
	}
	req, err := readJsonObject(r)
	if err != nil {
		return nil, err
	}
	if !bodyIdMatches(req, id) {
		return nil, errIdMismatch()
	}
	in := rs.newDto()
	if err := decodeInto(req, in); err != nil {
		return nil, err
	}
	if aerr := rs.edit(r.Context(), id, in); aerr != nil {
		return nil, aerr
	}
	return nil, nil
}
