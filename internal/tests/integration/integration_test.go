package integration

import (
	"net/http"
	"testing"
)

func TestIntegrations_CRUD(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "connect@example.com", "password123")

	// Create
	resp := app.request(t, http.MethodPost, "/api/v1/integrations", map[string]interface{}{
		"name":   "Billing API",
		"type":   "api",
		"config": map[string]string{"url": "https://billing.internal"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Create returned %d, want 201", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	i := body["integration"].(map[string]interface{})
	id, _ := i["id"].(string)
	if id == "" {
		t.Fatal("Integration has no ID")
	}
	if i["is_active"] != true {
		t.Error("New integrations must start active")
	}

	// List
	resp = app.request(t, http.MethodGet, "/api/v1/integrations", nil)
	body = decodeBody(t, resp)
	list, ok := body["integrations"].([]interface{})
	if !ok || len(list) != 1 {
		t.Fatalf("integrations = %v, want one entry", body["integrations"])
	}

	// Update the name only
	resp = app.request(t, http.MethodPut, "/api/v1/integrations/"+id, map[string]interface{}{
		"name": "Renamed feed",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Update returned %d, want 200", resp.StatusCode)
	}
	body = decodeBody(t, resp)
	i = body["integration"].(map[string]interface{})
	if i["name"] != "Renamed feed" {
		t.Errorf("name = %v, want Renamed feed", i["name"])
	}

	// Deactivate
	resp = app.request(t, http.MethodPost, "/api/v1/integrations/"+id+"/deactivate", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Deactivate returned %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	resp = app.request(t, http.MethodGet, "/api/v1/integrations/"+id, nil)
	body = decodeBody(t, resp)
	i = body["integration"].(map[string]interface{})
	if i["is_active"] != false {
		t.Error("Expected inactive integration")
	}

	// Delete
	resp = app.request(t, http.MethodDelete, "/api/v1/integrations/"+id, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Delete returned %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	resp = app.request(t, http.MethodGet, "/api/v1/integrations/"+id, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Get after delete returned %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestIntegrations_RejectsUnknownType(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "types@example.com", "password123")

	resp := app.request(t, http.MethodPost, "/api/v1/integrations", map[string]interface{}{
		"name": "Webhook feed",
		"type": "webhook",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Returned %d, want 400", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["code"] != "VALIDATION_ERROR" && body["code"] != "BAD_REQUEST" {
		t.Errorf("code = %v, want a validation failure", body["code"])
	}
}
