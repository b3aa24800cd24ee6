package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"serwer-mediow/internal/models"
	"serwer-mediow/internal/websocket"
)

// Document is the single persisted document holding every account and every
// per-namespace file list. Each mutation rewrites the whole document.
type Document struct {
	Users map[string]models.User         `json:"users"`
	Files map[string][]models.FileRecord `json:"files"`
}

func newDocument() *Document {
	return &Document{
		Users: make(map[string]models.User),
		Files: make(map[string][]models.FileRecord),
	}
}

// NamespaceDirs creates the on-disk directory backing a namespace. Account
// creation must be able to guarantee the directory exists before the document
// referencing it is persisted.
type NamespaceDirs interface {
	EnsureNamespace(dataDirName string) error
}

// Store owns the persisted document. All mutations are serialized through a
// single mutex (the mutation queue) so two load-modify-save cycles can never
// interleave and clobber each other. Pure reads bypass the queue: they only
// ever observe a complete document, because saves are temp-file-plus-rename.
type Store struct {
	path string
	dirs NamespaceDirs
	hub  *websocket.Hub
	mu   sync.Mutex
}

func NewStore(path string, dirs NamespaceDirs, hub *websocket.Hub) *Store {
	return &Store{
		path: path,
		dirs: dirs,
		hub:  hub,
	}
}

// load reads the persisted document. A missing or unparsable document yields
// an empty one instead of an error: availability over durability, and the
// lazy-creation path for a fresh deployment. Callers must not treat an empty
// document as proof that none was ever written.
func (s *Store) load() *Document {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return newDocument()
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("WARN: Dokument %s jest nieczytelny, startuję z pustym stanem: %v", s.path, err)
		return newDocument()
	}
	if doc.Users == nil {
		doc.Users = make(map[string]models.User)
	}
	if doc.Files == nil {
		doc.Files = make(map[string][]models.FileRecord)
	}
	return &doc
}

// save writes the full document next to its final path and renames it into
// place. A crash mid-write can therefore never leave a half-written document
// under the real name.
func (s *Store) save(doc *Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".data-*")
	if err != nil {
		return fmt.Errorf("store: create temp document: %w", err)
	}
	tmpPath := tmp.Name()

	_, werr := tmp.Write(raw)
	cerr := tmp.Close()
	if werr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("store: write document: %w", werr)
	}
	if cerr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("store: flush document: %w", cerr)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("store: rename document: %w", err)
	}
	return nil
}

// Update runs one load-modify-save cycle through the mutation queue. If fn
// returns an error the document is not saved.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

// publishEvent broadcasts a store event to connected websocket clients.
// The hub is optional; tests run without one.
func (s *Store) publishEvent(eventType string, payload interface{}) {
	if s.hub == nil {
		return
	}
	eventMsg := map[string]interface{}{
		"event_type": eventType,
		"payload":    payload,
	}
	eventBytes, err := json.Marshal(eventMsg)
	if err != nil {
		log.Printf("ERROR: Failed to marshal %s event: %v", eventType, err)
		return
	}
	s.hub.Broadcast(eventBytes)
}
