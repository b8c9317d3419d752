// Package api holds request and response types shared by the server and its clients.
package api

const ApiVersion_1_0 = "1.0"

// ServerVersion is reported by GET /version.
const ServerVersion = "ObjectifiedSrv: 1.0.0"

type GetVersionReq struct {
	ApiVersion string `json:"api_version,omitempty"`
}

func (r GetVersionReq) RequestMethod() (string, string) {
	return "GET", "/version"
}

type GetVersionRsp struct {
	ServerVersion string `json:"server_version"`
	ApiVersion    string `json:"api_version"`
}
