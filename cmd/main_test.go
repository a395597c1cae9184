package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/skins-api/internal/crypt"
	"github.com/sbilibin2017/skins-api/internal/handlers"
	"github.com/sbilibin2017/skins-api/internal/middlewares"
	"github.com/sbilibin2017/skins-api/internal/models"
	"github.com/sbilibin2017/skins-api/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Build version: v1.0.0")
	assert.Contains(t, output, "Build commit: abcd1234")
	assert.Contains(t, output, "Build date: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()
	os.Setenv("CRYPT_KEY", "secret")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "skins", cfg.SkinsPath)
	assert.Equal(t, handlers.DefaultMaxUploadBodyBytes, cfg.MaxUploadBodyBytes)

	assert.Equal(t, "secret", cfg.CryptKey)
	assert.Equal(t, "skins-api", cfg.CryptSalt)

	assert.Equal(t, "localhost", cfg.PGHost)
	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, "user", cfg.PGUser)
	assert.Equal(t, "password", cfg.PGPassword)
	assert.Equal(t, "database", cfg.PGDB)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 8, cfg.PGMaxIdleConns)

	assert.False(t, cfg.CSRFStrict)
	assert.Equal(t, 3600, cfg.CSRFTTLSecond)

	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Equal(t, 2, cfg.RedisMinIdleConns)

	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "skins-events", cfg.KafkaTopic)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("APP_LOG_FORMAT", "console")
	os.Setenv("SKINS_PATH", "/var/lib/skins")
	os.Setenv("MAX_UPLOAD_BODY_BYTES", "65536")
	os.Setenv("CRYPT_KEY", "supersecret")
	os.Setenv("CRYPT_SALT", "pepper")
	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("CSRF_STRICT", "true")
	os.Setenv("CSRF_TTL_SECOND", "120")
	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	os.Setenv("KAFKA_TOPIC", "events")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "/var/lib/skins", cfg.SkinsPath)
	assert.Equal(t, int64(65536), cfg.MaxUploadBodyBytes)
	assert.Equal(t, "pepper", cfg.CryptSalt)
	assert.Equal(t, "pg.example.com", cfg.PGHost)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, 20, cfg.PGMaxOpenConns)
	assert.True(t, cfg.CSRFStrict)
	assert.Equal(t, 120, cfg.CSRFTTLSecond)
	assert.Equal(t, "redis.example.com", cfg.RedisHost)
	assert.Equal(t, 6380, cfg.RedisPort)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "events", cfg.KafkaTopic)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "missing key", env: map[string]string{}, want: "CRYPT_KEY"},
		{name: "bad port", env: map[string]string{"CRYPT_KEY": "k", "POSTGRES_PORT": "abc"}, want: "POSTGRES_PORT"},
		{name: "bad strict flag", env: map[string]string{"CRYPT_KEY": "k", "CSRF_STRICT": "maybe"}, want: "CSRF_STRICT"},
		{name: "bad body cap", env: map[string]string{"CRYPT_KEY": "k", "MAX_UPLOAD_BODY_BYTES": "1MB"}, want: "MAX_UPLOAD_BODY_BYTES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			_, err := parseConfig("nonexistent.env")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	codec, err := crypt.New("secret", "salt")
	require.NoError(t, err)

	mockDB := handlers.NewMockPinger(ctrl)
	mockAuth := middlewares.NewMockAuthenticator(ctrl)
	mockSkins := handlers.NewMockSkinUploader(ctrl)

	router := newRouter(routerDeps{
		db:         mockDB,
		accounts:   services.NewAccountService(nil, nil, nil, codec, nil),
		users:      services.NewUserService(nil, nil),
		sessions:   mockAuth,
		csrf:       services.NewCSRFService(codec),
		skins:      mockSkins,
		swaggerURL: "/swagger/doc.json",
	})

	t.Run("health", func(t *testing.T) {
		mockDB.EXPECT().PingContext(gomock.Any()).Return(nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(middlewares.RequestIDHeader))
	})

	t.Run("csrf token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/account/csrf", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"token"`)
	})

	t.Run("me without session", func(t *testing.T) {
		mockAuth.EXPECT().Authenticate(gomock.Any(), "").Return(nil, services.ErrUnauthenticated)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/account/@me", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.NotContains(t, rr.Body.String(), `"account"`)
	})

	t.Run("profile update requires csrf before session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/v1/account", strings.NewReader("username=alice"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set(middlewares.SessionHeader, "token")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("register rejects invalid input after csrf", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/v1/account/register", strings.NewReader("username=&email=a@x.com"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set(middlewares.CSRFHeader, codec.Encrypt("nonce"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("upload goes through session", func(t *testing.T) {
		owner := &models.Account{ID: "acc-1"}
		mockAuth.EXPECT().Authenticate(gomock.Any(), "token").Return(owner, nil)
		mockSkins.EXPECT().Upload(gomock.Any(), owner, gomock.Any()).Return("", services.ErrSkinMissing)

		req := httptest.NewRequest(http.MethodPut, "/v1/skins/upload", strings.NewReader("--b--\r\n"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=b")
		req.Header.Set(middlewares.SessionHeader, "token")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Could not find skin file.")
	})
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return fmt.Sprint(l.Addr().(*net.TCPAddr).Port)
}

func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := &config{
		AppHost:            "127.0.0.1",
		AppPort:            freePort(t),
		LogLevel:           "debug",
		LogFormat:          "console",
		SkinsPath:          t.TempDir(),
		MaxUploadBodyBytes: handlers.DefaultMaxUploadBodyBytes,
		CryptKey:           "testsecret",
		CryptSalt:          "testsalt",
		PGHost:             pgHost,
		PGPort:             pgPort.Int(),
		PGUser:             "user",
		PGPassword:         "password",
		PGDB:               "testdb",
		PGMaxOpenConns:     5,
		PGMaxIdleConns:     2,
	}

	testCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- run(testCtx, cfg) }()

	healthURL := fmt.Sprintf("http://%s:%s/health", cfg.AppHost, cfg.AppPort)
	require.Eventually(t, func() bool {
		resp, err := http.Get(healthURL)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 30*time.Second, 200*time.Millisecond)

	cancel()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
