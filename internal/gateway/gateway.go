// Package gateway exposes the DES cipher over HTTP and websocket.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/nPaBwaYT/des/internal/config"
	"github.com/nPaBwaYT/des/internal/helpers"
	"github.com/nPaBwaYT/des/value"
)

var errUnknownOp = errors.New("unknown operation")

// Server represents the cipher gateway
type Server struct {
	cfg        *config.Config
	logger     *helpers.Logger
	ciphers    *cipherCache
	upgrader   websocket.Upgrader
	httpServer *http.Server
}

type cipherRequest struct {
	Op     string `json:"op,omitempty"`
	Key    string `json:"key"`
	Text   string `json:"text"`
	Format string `json:"format,omitempty"`
}

type cipherResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

type subkeysResponse struct {
	Key     string   `json:"key"`
	Subkeys []string `json:"subkeys"`
}

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// New creates a new gateway server
func New(cfg *config.Config, logger *helpers.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		ciphers: newCipherCache(cfg.Cipher.CacheSize),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

// Router builds the route table
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("DES gateway"))
	}).Methods("GET", "OPTIONS")

	router.HandleFunc("/api/encrypt", s.handleCipher("encrypt")).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/decrypt", s.handleCipher("decrypt")).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/subkeys/{key}", s.handleSubkeys).Methods("GET", "OPTIONS")
	router.HandleFunc("/ws", s.handleWebSocket)

	return corsMiddleware(router)
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("listening", "addr", s.cfg.Addr())
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// process runs one encrypt or decrypt request. Keys and texts never resolve
// to files here.
func (s *Server) process(req cipherRequest) (string, error) {
	op := strings.ToLower(req.Op)
	if op != "encrypt" && op != "decrypt" {
		return "", fmt.Errorf("%w %q", errUnknownOp, req.Op)
	}

	key, err := value.ParseInline(req.Key)
	if err != nil {
		return "", fmt.Errorf("key: %w", err)
	}
	text, err := value.ParseInline(req.Text)
	if err != nil {
		return "", fmt.Errorf("text: %w", err)
	}
	format, err := value.ParseOutputFormat(req.Format)
	if err != nil {
		return "", err
	}

	cipher := s.ciphers.get(key)

	var result uint64
	if op == "encrypt" {
		result = cipher.Encrypt(text)
	} else {
		result = cipher.Decrypt(text)
	}

	s.logger.Debug(op, cipher.Key().String(), fmt.Sprintf("%016X -> %016X", text, result))
	return value.Format(result, format), nil
}

func (s *Server) handleCipher(op string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cipherRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, cipherResponse{Error: "invalid request body"})
			return
		}
		req.Op = op

		result, err := s.process(req)
		if err != nil {
			s.logger.Warn(op+" rejected", err.Error())
			writeJSON(w, http.StatusBadRequest, cipherResponse{Error: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, cipherResponse{Result: result})
	}
}

func (s *Server) handleSubkeys(w http.ResponseWriter, r *http.Request) {
	key, err := value.ParseInline(mux.Vars(r)["key"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, cipherResponse{Error: fmt.Sprintf("key: %v", err)})
		return
	}

	cipher := s.ciphers.get(key)
	resp := subkeysResponse{Key: cipher.Key().String()}
	for _, sk := range cipher.Subkeys() {
		resp.Subkeys = append(resp.Subkeys, fmt.Sprintf("%012X", sk))
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
