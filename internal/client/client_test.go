package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/snapbuy-client/internal/domain/customer"
	"github.com/xenking/snapbuy-client/internal/domain/order"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)
	return c
}

func TestNewValidation(t *testing.T) {
	_, err := New(Config{APIKey: "k"})
	assert.Error(t, err)

	_, err = New(Config{BaseURL: "http://example.com"})
	assert.Error(t, err)
}

func TestCallHeaders(t *testing.T) {
	var gotMethod, gotKey, gotAuth, gotCT string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotKey = r.Header.Get("x-api-key")
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := c.Me(context.Background(), "tok-1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "application/json", gotCT)
}

func TestCallNoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	haveAuth := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, haveAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"name":"SnapBuy"}`))
	}))

	_, err := c.Store(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.False(t, haveAuth)
}

func TestRequestError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))

	_, err := c.Product(context.Background(), "p1")
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.Status)
	assert.Equal(t, "Not Found", reqErr.StatusText)
	assert.Equal(t, "api error: 404 Not Found", reqErr.Error())
}

func TestCreateOrderRoundTrip(t *testing.T) {
	var gotPath string
	var gotBody map[string]json.RawMessage
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"message":"ok","order":{"id":"ord_7","status":"pending","totalPrice":"120.50"}}`))
	}))

	req := order.CreateRequest{
		Products: map[string]order.Count{"p1": {Count: 3}},
		Packs:    map[string]order.Count{},
		Client:   order.Contact{Firstname: "Sam", Lastname: "Reed", Phone: "0555"},
	}
	res, err := c.CreateOrder(context.Background(), req, "tok")
	require.NoError(t, err)

	assert.Equal(t, "/create-order", gotPath)
	assert.JSONEq(t, `{"p1":{"count":3}}`, string(gotBody["products"]))
	assert.Equal(t, "ord_7", res.Order.ID)
	assert.True(t, res.Order.TotalPrice.Equal(decimal.RequireFromString("120.50")))
}

func TestLoginAndMe(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/account/login":
			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "sam", creds["username"])
			assert.Equal(t, "secret", creds["password"])
			_, _ = w.Write([]byte(`{"token":"tok-9"}`))
		case "/account/me":
			assert.Equal(t, "Bearer tok-9", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"username":"sam","status":"accepted"}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))

	token, err := c.Login(context.Background(), "sam", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-9", token)

	me, err := c.Me(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "sam", me.Username)
}

func TestDeleteAccountConfirmsPassword(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{}`))
	}))

	err := c.DeleteAccount(context.Background(), "secret", "tok")
	require.NoError(t, err)
	assert.Equal(t, "/account/delete", gotPath)
	assert.Equal(t, map[string]string{"password": "secret"}, gotBody)
}

func TestCreateAccountBody(t *testing.T) {
	var gotBody map[string]json.RawMessage
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"token":"tok-3"}`))
	}))

	cust := customer.Customer{
		Username:  "sam",
		Firstname: "Sam",
		Lastname:  "Reed",
		Phone:     "0555",
	}
	token, err := c.CreateAccount(context.Background(), cust, "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-3", token)

	assert.JSONEq(t, `"secret"`, string(gotBody["password"]))
	assert.JSONEq(t, `"sam"`, string(gotBody["username"]))
	// The approval status is assigned server-side; a new account sends none.
	assert.NotContains(t, gotBody, "status")
}

func TestEndpointBodies(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody = nil
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{}`))
	}))

	ctx := context.Background()

	_, err := c.Collection(ctx, "col1")
	require.NoError(t, err)
	assert.Equal(t, "/collections/col1", gotPath)
	assert.Equal(t, map[string]string{"collectionId": "col1"}, gotBody)

	_, err = c.Brand(ctx, "b2")
	require.NoError(t, err)
	assert.Equal(t, "/brands/b2", gotPath)
	assert.Equal(t, map[string]string{"brandId": "b2"}, gotBody)

	_, err = c.Order(ctx, "ord_1", "tok")
	require.NoError(t, err)
	assert.Equal(t, "/orders/ord_1", gotPath)
	assert.Equal(t, map[string]string{"orderId": "ord_1"}, gotBody)
}

func TestDeliveryPricesBody(t *testing.T) {
	var gotBody map[string]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`[{"id":"dp1","deliveryOptionId":"opt1","name":"Algiers","price":"400"}]`))
	}))

	prices, err := c.DeliveryPrices(context.Background(), "opt1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"deliveryOptionId": "opt1"}, gotBody)
	require.Len(t, prices, 1)
	assert.Equal(t, "opt1", prices[0].DeliveryOptionID)
}
