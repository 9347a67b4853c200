package docs

import (
	"encoding/json"
	"testing"
)

func TestReadDocIsValidJSON(t *testing.T) {
	var doc struct {
		Info  map[string]any            `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("doc is not JSON: %v", err)
	}
	if doc.Info["title"] != SwaggerInfo.Title {
		t.Fatalf("title = %v", doc.Info["title"])
	}
	for _, p := range []string{"/health", "/ac", "/ac/{ac_id}", "/history/{ac_id}", "/command", "/command/text", "/commands"} {
		if _, ok := doc.Paths[p]; !ok {
			t.Errorf("path %s not documented", p)
		}
	}
}
