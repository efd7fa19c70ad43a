//go:build !swag

package swaggerkit

// docReader serves a skeleton so the UI still loads without generated docs
// build with -tags swag to link internal/services/api/docs
var docReader = func() string {
	return `{"openapi":"3.0.3","info":{"title":"jobguard API","version":"0.0.0"},"paths":{}}`
}
