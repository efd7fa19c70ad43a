//go:build swag

package swaggerkit

import (
	docs "jobguard/internal/services/api/docs"
)

// docReader reads the generated document, a seam so tests can feed broken JSON
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }
