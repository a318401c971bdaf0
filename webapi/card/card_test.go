package card_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/corebanq/dbank/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accountBody = `{
	"firstName": "Marie",
	"lastName": "Curie",
	"birthDate": "1987-11-07",
	"country": "France",
	"passportNumber": "123456789",
	"phoneNumber": "+33612345678",
	"iban": "FR7630006000011234567890189"
}`

func cardBody(accountID string) string {
	return fmt.Sprintf(`{
		"number": "4556737586899855",
		"cryptogram": "123",
		"expirationDate": "2028-05",
		"code": "1234",
		"ceiling": 500,
		"virtual": false,
		"localization": true,
		"contactless": true,
		"blocked": false,
		"accountId": %q
	}`, accountID)
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func createAccount(t *testing.T, app *fiber.App, token string) string {
	t.Helper()
	resp := testutils.Request(t, app, "POST", "/accounts", accountBody, token)
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decode[map[string]any](t, resp)["id"].(string)
}

func createCard(t *testing.T, app *fiber.App, token, accountID string) map[string]any {
	t.Helper()
	resp := testutils.Request(t, app, "POST", "/cards", cardBody(accountID), token)
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decode[map[string]any](t, resp)
}

func TestCards_CreateMasksNumberForClient(t *testing.T) {
	app, _ := testutils.NewApp(t)
	client := testutils.Token(t, "u1", "Client")

	accountID := createAccount(t, app, client)
	created := createCard(t, app, client, accountID)

	assert.Equal(t, "************9855", created["number"])
	assert.NotContains(t, created, "cryptogram")
	assert.NotContains(t, created, "code")
	assert.NotContains(t, created, "codeHash")
}

func TestCards_AdminSeesFullNumber(t *testing.T) {
	app, _ := testutils.NewApp(t)
	client := testutils.Token(t, "u1", "Client")
	admin := testutils.Token(t, "root", "Admin")

	accountID := createAccount(t, app, client)
	created := createCard(t, app, client, accountID)
	id := created["id"].(string)

	resp := testutils.Request(t, app, "GET", "/cards/"+id, "", admin)
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	full := decode[map[string]any](t, resp)
	assert.Equal(t, "4556737586899855", full["number"])
	assert.Equal(t, "123", full["cryptogram"])
	assert.Equal(t, "2028-05", full["expirationDate"])
}

func TestCards_CheckCodeScenario(t *testing.T) {
	app, _ := testutils.NewApp(t)
	client := testutils.Token(t, "u1", "Client")
	atm := testutils.Token(t, "atm-1", "ATM")

	accountID := createAccount(t, app, client)
	id := createCard(t, app, client, accountID)["id"].(string)

	resp := testutils.Request(t, app, "POST", "/cards/"+id+"/code/check", `{"code":"1234"}`, atm)
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decode[map[string]any](t, resp)
	assert.Equal(t, true, result["checked"])

	resp = testutils.Request(t, app, "POST", "/cards/"+id+"/code/check", `{"code":"0000"}`, atm)
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result = decode[map[string]any](t, resp)
	assert.Equal(t, false, result["checked"])
	// the stored hash never leaves the server
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "$2a$")
}

func TestCards_CheckCodeRoleGate(t *testing.T) {
	app, _ := testutils.NewApp(t)
	client := testutils.Token(t, "u1", "Client")

	accountID := createAccount(t, app, client)
	id := createCard(t, app, client, accountID)["id"].(string)

	// clients may not probe PINs
	resp := testutils.Request(t, app, "POST", "/cards/"+id+"/code/check", `{"code":"1234"}`, client)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCards_CheckIdentity(t *testing.T) {
	app, _ := testutils.NewApp(t)
	client := testutils.Token(t, "u1", "Client")
	merchant := testutils.Token(t, "m1", "Merchant")

	accountID := createAccount(t, app, client)
	createCard(t, app, client, accountID)

	body := `{"number":"4556737586899855","cryptogram":"123","expirationDate":"2028-05"}`
	resp := testutils.Request(t, app, "POST", "/cards/identity/check", body, merchant)
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decode[map[string]any](t, resp)
	assert.Equal(t, true, result["checked"])

	body = `{"number":"4556737586899855","cryptogram":"999","expirationDate":"2028-05"}`
	resp = testutils.Request(t, app, "POST", "/cards/identity/check", body, merchant)
	defer resp.Body.Close() //nolint: errcheck
	result = decode[map[string]any](t, resp)
	assert.Equal(t, false, result["checked"])
}

func TestCards_ExpireAdminOnlyAndIdempotent(t *testing.T) {
	app, _ := testutils.NewApp(t)
	client := testutils.Token(t, "u1", "Client")
	admin := testutils.Token(t, "root", "Admin")

	accountID := createAccount(t, app, client)
	id := createCard(t, app, client, accountID)["id"].(string)

	resp := testutils.Request(t, app, "POST", "/cards/"+id+"/expire", "", client)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	for i := 0; i < 2; i++ {
		resp = testutils.Request(t, app, "POST", "/cards/"+id+"/expire", "", admin)
		defer resp.Body.Close() //nolint: errcheck
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		expired := decode[map[string]any](t, resp)
		assert.Equal(t, true, expired["expired"])
	}

	// terminal state refuses edits
	resp = testutils.Request(t, app, "PATCH", "/cards/"+id, `{"ceiling":1000}`, client)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCards_BlockedRefusesPut(t *testing.T) {
	app, _ := testutils.NewApp(t)
	client := testutils.Token(t, "u1", "Client")

	accountID := createAccount(t, app, client)
	id := createCard(t, app, client, accountID)["id"].(string)

	resp := testutils.Request(t, app, "PATCH", "/cards/"+id, `{"blocked":true}`, client)
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = testutils.Request(t, app, "PUT", "/cards/"+id, cardBody(accountID), client)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCards_Delete(t *testing.T) {
	app, _ := testutils.NewApp(t)
	client := testutils.Token(t, "u1", "Client")

	accountID := createAccount(t, app, client)
	id := createCard(t, app, client, accountID)["id"].(string)

	resp := testutils.Request(t, app, "DELETE", "/cards/"+id, "", client)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = testutils.Request(t, app, "GET", "/cards/"+id, "", client)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
