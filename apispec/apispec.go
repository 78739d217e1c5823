// Package apispec turns the swag generated Swagger 2.0 document into an
// OpenAPI 3 document.
package apispec

import (
	"context"
	"encoding/json"
	"fmt"
	"microservice/docs"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

func Load(ctx context.Context) (*openapi3.T, error) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return nil, fmt.Errorf("read swagger doc: %w", err)
	}

	var doc2 openapi2.T
	if err := json.Unmarshal([]byte(raw), &doc2); err != nil {
		return nil, fmt.Errorf("decode swagger doc: %w", err)
	}

	converted, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, fmt.Errorf("convert to openapi 3: %w", err)
	}

	// reload so every $ref is resolved
	data, err := json.Marshal(converted)
	if err != nil {
		return nil, fmt.Errorf("encode openapi 3: %w", err)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("load openapi 3: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi 3: %w", err)
	}

	return doc, nil
}
