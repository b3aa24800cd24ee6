package api

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"serwer-mediow/internal/auth"
	"serwer-mediow/internal/database"
	"serwer-mediow/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

const (
	msgInvalidFileType = "Invalid file type"
	msgNoFileUploaded  = "File is not uploaded"

	maxUploadBytes = 100 << 20 // 100 MiB per payload
)

// mimeWhitelist maps every accepted media type to the extension used for the
// generated on-disk name. Anything absent from this table is rejected.
var mimeWhitelist = map[string]string{
	"video/mp4":        ".mp4",
	"video/quicktime":  ".mov",
	"video/x-matroska": ".mkv",
	"video/webm":       ".webm",
	"video/mp2t":       ".ts",
	"video/ogg":        ".ogv",
	"audio/ogg":        ".ogg",
	"audio/mp4":        ".m4a",
	"audio/mpeg":       ".mp3",
	"audio/wav":        ".wav",
	"audio/flac":       ".flac",
	"audio/x-matroska": ".mka",
}

// generateFilename produces the random on-disk name for one payload: 16 hex
// characters plus the whitelist extension. Random enough that collisions
// inside a namespace are not a practical concern, and never derived from
// user input, so uploads cannot traverse or overwrite paths.
func generateFilename(ext string) (string, error) {
	generateID, err := nanoid.CustomASCII("0123456789abcdef", 16)
	if err != nil {
		return "", fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}
	return generateID() + ext, nil
}

type FilesResponse struct {
	Files []models.FileRecord `json:"files"`
}

// @Summary      Upload a media file
// @Description  Stores one audio/video payload in the authenticated user's namespace and records its metadata.
// @Tags         files
// @Accept       mpfd
// @Produce      json
// @Param        screen_name  query     string  true   "Screen name"
// @Param        password     query     string  false  "Password"
// @Param        file         formData  file    true   "Media payload"
// @Success      200          {object}  StatusResponse
// @Failure      400          {string}  string "Malformed or oversized payload"
// @Router       /upload [post]
func (s *Server) UploadFileHandler(w http.ResponseWriter, r *http.Request) {
	screenName := r.URL.Query().Get("screen_name")
	password := r.URL.Query().Get("password")

	if screenName == "" {
		http.Error(w, "screen_name is required", http.StatusBadRequest)
		return
	}

	// Authentication comes first: a bad password must not cost any disk I/O
	// in the user's namespace.
	user, err := s.store.GetUser(r.Context(), screenName)
	if err != nil {
		respondError(w, msgUserNotFound)
		return
	}
	if !auth.CheckPasswordHash(user.PasswordAlgorithm, password, user.HashedPassword) {
		respondError(w, msgPasswordIncorrect)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Error parsing multipart form", http.StatusBadRequest)
		return
	}

	if len(r.MultipartForm.File["file"]) > 1 {
		http.Error(w, "Only one file per upload", http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		respondError(w, msgNoFileUploaded)
		return
	}
	defer file.Close()

	mediaType := strings.ToLower(strings.TrimSpace(handler.Header.Get("Content-Type")))
	ext, ok := mimeWhitelist[mediaType]
	if !ok {
		respondError(w, msgInvalidFileType)
		return
	}

	// Stage the payload to a scratch file outside the namespace, the way the
	// multipart parser itself spools big parts. The scratch copy is removed
	// no matter how the rest of the pipeline goes.
	scratchPath := filepath.Join(os.TempDir(), "upload-"+uuid.New().String())
	scratch, err := os.Create(scratchPath)
	if err != nil {
		http.Error(w, "Failed to stage upload", http.StatusInternalServerError)
		return
	}
	defer os.Remove(scratchPath)

	_, copyErr := io.Copy(scratch, file)
	closeErr := scratch.Close()
	if copyErr != nil || closeErr != nil {
		http.Error(w, "Failed to stage upload", http.StatusInternalServerError)
		return
	}

	filename, err := generateFilename(ext)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	staged, err := os.Open(scratchPath)
	if err != nil {
		http.Error(w, "Failed to stage upload", http.StatusInternalServerError)
		return
	}
	defer staged.Close()

	// The payload must be durably on disk under its final name before any
	// metadata exists that points at it. The reverse order is forbidden.
	if _, err := s.storage.Save(user.DataDirName, filename, staged); err != nil {
		log.Printf("ERROR: Failed to save payload for %q: %v", screenName, err)
		respondError(w, "Failed to save file")
		return
	}

	record := models.FileRecord{
		Title:    handler.Filename,
		Filename: filename,
	}
	if err := s.store.AppendFileRecord(r.Context(), user.DataDirName, record); err != nil {
		// TODO: Sprzątanie osieroconych plików, gdy zapis metadanych się nie powiedzie
		log.Printf("ERROR: Failed to record upload for %q: %v", screenName, err)
		respondError(w, "Failed to save file record")
		return
	}

	respondOK(w)
}

// @Summary      List a namespace's files
// @Description  Returns the upload-ordered file records for a data_dir_name.
// @Tags         files
// @Produce      json
// @Param        data_dir_name  path      string  true  "Namespace identifier"
// @Success      200            {object}  FilesResponse
// @Router       /files/{data_dir_name} [get]
func (s *Server) ListFilesHandler(w http.ResponseWriter, r *http.Request) {
	dataDirName := chi.URLParam(r, "data_dir_name")

	files, err := s.store.ListFiles(r.Context(), dataDirName)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			respondError(w, msgUserNotFound)
			return
		}
		http.Error(w, "Failed to list files", http.StatusInternalServerError)
		return
	}

	respondJSON(w, FilesResponse{Files: files})
}
