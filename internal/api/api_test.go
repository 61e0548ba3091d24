package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/scheduling/internal/api"
	"github.com/samandr77/microservices/scheduling/internal/entity"
	"github.com/samandr77/microservices/scheduling/internal/mocks"
	"github.com/samandr77/microservices/scheduling/pkg/token"
)

const cronSecret = "s3cr3t"

type testAPI struct {
	s      *mocks.MockService
	router http.Handler
	key    *rsa.PrivateKey
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	parser, err := token.NewParser(string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})))
	require.NoError(t, err)

	s := mocks.NewMockService(gomock.NewController(t))

	return &testAPI{
		s:      s,
		router: api.NewRouter(api.NewHandler(s), api.NewMiddleware(parser, cronSecret)),
		key:    priv,
	}
}

func (ta *testAPI) bearer(t *testing.T, p entity.Principal) string {
	t.Helper()

	claims := token.Claims{
		User: token.UserInfo{ID: p.ID, Role: string(p.Role), IsWorker: p.IsWorker},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	s, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(ta.key)
	require.NoError(t, err)

	return "Bearer " + s
}

type call struct {
	method  string
	target  string
	body    string
	headers map[string]string
}

func (ta *testAPI) do(t *testing.T, c call) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if c.body != "" {
		body = strings.NewReader(c.body)
	}

	req := httptest.NewRequest(c.method, c.target, body)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))

	return v
}

func principal(role entity.Role, isWorker bool) entity.Principal {
	return entity.Principal{ID: uuid.Must(uuid.NewV4()), Role: role, IsWorker: isWorker}
}
