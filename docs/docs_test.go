package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}
	var parsed struct {
		Paths map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}
	for _, p := range []string{"/", "/login", "/register", "/logout", "/dashboard", "/new", "/edit/{id}", "/search", "/health"} {
		if _, ok := parsed.Paths[p]; !ok {
			t.Errorf("path %s not documented", p)
		}
	}
}
