package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/deanrtaylor1/gosource/logger"
	"github.com/deanrtaylor1/gosource/stem"
	"github.com/deanrtaylor1/gosource/store"
	"github.com/deanrtaylor1/gosource/textmodel"
)

// maxRequestBody bounds the text accepted by the build route
const maxRequestBody = 10 * 1024 * 1024

type Response struct {
	Message string `json:"Message"`
	Data    any    `json:"Data,omitempty"`
}

type ClassifyRequest struct {
	Unknown string `json:"unknown"`
	SourceA string `json:"source_a"`
	SourceB string `json:"source_b"`
}

type BuildRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type ModelResponseData struct {
	Name            string `json:"name"`
	Words           int    `json:"words"`
	WordLengths     int    `json:"word_lengths"`
	Stems           int    `json:"stems"`
	SentenceLengths int    `json:"sentence_lengths"`
	Conjunctions    int    `json:"conjunctions"`
}

// Server answers classification requests against the models saved in ModelDir
type Server struct {
	ModelDir string
	Stemmer  stem.Stemmer
	// FileOps writes built models, store.FileOpsImpl when nil
	FileOps store.FileOps

	// buildLock serialises model builds, the snowball stemmer is not safe for concurrent use
	buildLock sync.Mutex
}

func writeJSON(w http.ResponseWriter, status int, response any) {
	jsonBytes, err := json.Marshal(response)
	if err != nil {
		log.Println("Unable to marshal json: ", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(jsonBytes)
	if err != nil {
		log.Println(err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrInvalidName):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrModelNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		logger.HandleError(err)
	}
	writeJSON(w, status, &Response{Message: err.Error()})
}

// Server route to list the saved models
func (s *Server) handleApiModels(w http.ResponseWriter, r *http.Request) {
	names, err := store.ListModels(s.ModelDir)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &Response{Message: "Available models", Data: names})
}

// Server route to describe one saved model
func (s *Server) handleApiModel(w http.ResponseWriter, r *http.Request, name string) {
	m, err := store.ReadModel(s.ModelDir, name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &Response{
		Message: "Model " + m.Name,
		Data: ModelResponseData{
			Name:            m.Name,
			Words:           len(m.Words),
			WordLengths:     len(m.WordLengths),
			Stems:           len(m.Stems),
			SentenceLengths: len(m.SentenceLengths),
			Conjunctions:    len(m.Conjunctions),
		},
	})
}

// Server route to build a model from raw text and save it
func (s *Server) handleApiBuild(w http.ResponseWriter, r *http.Request) {
	var req BuildRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, &Response{Message: "Invalid request body"})
		return
	}
	if err := store.ValidateName(req.Name); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, &Response{Message: "Text must not be empty"})
		return
	}

	fileOps := s.FileOps
	if fileOps == nil {
		fileOps = store.FileOpsImpl{}
	}

	s.buildLock.Lock()
	m := textmodel.NewModel(req.Name)
	m.Stemmer = s.Stemmer
	m.AddString(req.Text)
	err := store.SaveModel(fileOps, s.ModelDir, m)
	s.buildLock.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &Response{Message: fmt.Sprintf("Saved model %s", m.Name)})
}

// Server route to classify one saved model against two others
func (s *Server) handleApiClassify(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, &Response{Message: "Invalid request body"})
		return
	}
	if req.Unknown == "" || req.SourceA == "" || req.SourceB == "" {
		writeJSON(w, http.StatusBadRequest, &Response{Message: "unknown, source_a and source_b are required"})
		return
	}

	models := make([]*textmodel.Model, 0, 3)
	for _, name := range []string{req.Unknown, req.SourceA, req.SourceB} {
		m, err := store.ReadModel(s.ModelDir, name)
		if err != nil {
			writeError(w, err)
			return
		}
		models = append(models, m)
	}

	c := models[0].Classify(models[1], models[2])
	elapsed := time.Since(start)
	writeJSON(w, http.StatusOK, &Response{
		Message: fmt.Sprintf("Classified %s in %d ms", c.Name, elapsed.Milliseconds()),
		Data:    c,
	})
}

// Route handler
func (s *Server) handleRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Println(r.Method, r.URL.Path)
		switch {
		case r.Method == "GET" && r.URL.Path == "/api/models":
			s.handleApiModels(w, r)
		case r.Method == "GET" && strings.HasPrefix(r.URL.Path, "/api/models/"):
			s.handleApiModel(w, r, strings.TrimPrefix(r.URL.Path, "/api/models/"))
		case r.Method == "POST" && r.URL.Path == "/api/models":
			s.handleApiBuild(w, r)
		case r.Method == "POST" && r.URL.Path == "/api/classify":
			s.handleApiClassify(w, r)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, "404 Not Found")
		}
	}
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	return s.handleRequests()
}

func (s *Server) Serve(port string) error {
	log.Printf("Listening on port %s...", port)
	return http.ListenAndServe(":"+port, s.Handler())
}
