package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotImage = errors.New("only image files are allowed")
	ErrTooLarge = errors.New("file too large")
	ErrEmpty    = errors.New("file is empty")
)

// StoredFile describes a file written to disk and the URL it is served under.
type StoredFile struct {
	URL      string
	Filename string
	MimeType string
	Size     int64
}

// FileStore is the surface services use to keep uploaded images.
type FileStore interface {
	Save(folder string, fh *multipart.FileHeader) (*StoredFile, error)
	SaveReader(folder, originalName string, r io.Reader) (*StoredFile, error)
	Delete(publicURL string) error
}

type LocalStorage struct {
	root     string
	prefix   string
	maxBytes int64
	maxWidth int
	log      *zap.Logger
}

// NewLocalStorage stores files under root and serves them below prefix
// (e.g. "/uploads"). maxWidth <= 0 disables downscaling.
func NewLocalStorage(root, prefix string, maxBytes int64, maxWidth int, log *zap.Logger) *LocalStorage {
	return &LocalStorage{
		root:     root,
		prefix:   strings.TrimRight(prefix, "/"),
		maxBytes: maxBytes,
		maxWidth: maxWidth,
		log:      log.With(zap.String("component", "storage")),
	}
}

func (s *LocalStorage) Save(folder string, fh *multipart.FileHeader) (*StoredFile, error) {
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, fh.Filename, fh.Size)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	return s.SaveReader(folder, fh.Filename, src)
}

func (s *LocalStorage) SaveReader(folder, originalName string, r io.Reader) (*StoredFile, error) {
	limit := s.maxBytes
	if limit <= 0 {
		limit = 32 << 20
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", originalName, err)
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, originalName, limit)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("%w: %s detected as %s", ErrNotImage, originalName, mtype.String())
	}

	data = s.downscale(data, mtype)

	folder = sanitizeFolder(folder)
	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}

	name := GenerateUniqueFilename(originalName, mtype.Extension())
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("write upload %s: %w", name, err)
	}

	s.log.Info("File stored",
		zap.String("folder", folder),
		zap.String("filename", name),
		zap.String("mime", mtype.String()),
		zap.Int("size", len(data)),
	)

	return &StoredFile{
		URL:      s.prefix + "/" + path.Join(folder, name),
		Filename: name,
		MimeType: mtype.String(),
		Size:     int64(len(data)),
	}, nil
}

// downscale shrinks raster images wider than maxWidth, keeping the aspect
// ratio. Formats imaging cannot re-encode are stored untouched.
func (s *LocalStorage) downscale(data []byte, mtype *mimetype.MIME) []byte {
	if s.maxWidth <= 0 {
		return data
	}

	format, err := imaging.FormatFromExtension(mtype.Extension())
	if err != nil {
		return data
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= s.maxWidth {
		return data
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		s.log.Warn("Failed to decode image for resize", zap.Error(err))
		return data
	}

	resized := imaging.Resize(img, s.maxWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		s.log.Warn("Failed to encode resized image", zap.Error(err))
		return data
	}

	s.log.Debug("Image downscaled",
		zap.Int("from_width", cfg.Width),
		zap.Int("to_width", s.maxWidth),
	)
	return buf.Bytes()
}

// Delete removes a file previously returned by Save. URLs outside the public
// prefix (external links) and missing files are ignored.
func (s *LocalStorage) Delete(publicURL string) error {
	rel, ok := strings.CutPrefix(publicURL, s.prefix+"/")
	if !ok || rel == "" {
		return nil
	}

	full := filepath.Join(s.root, filepath.FromSlash(path.Clean("/"+rel)))
	if within, err := filepath.Rel(s.root, full); err != nil || strings.HasPrefix(within, "..") {
		return fmt.Errorf("refusing to delete %s outside upload dir", publicURL)
	}

	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete file %s: %w", full, err)
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filepath.Base(filename), "_")
}

func sanitizeFolder(folder string) string {
	safe := unsafeFilenameChars.ReplaceAllString(folder, "")
	safe = strings.Trim(strings.ReplaceAll(safe, "..", ""), ".")
	if safe == "" {
		return "general"
	}
	return safe
}

// GenerateUniqueFilename builds "<date>-<uuid>-<safe name>" and makes sure the
// name carries the detected extension.
func GenerateUniqueFilename(originalFilename, ext string) string {
	safe := sanitizeFilename(originalFilename)
	if ext != "" && !strings.EqualFold(filepath.Ext(safe), ext) {
		safe = strings.TrimSuffix(safe, filepath.Ext(safe)) + ext
	}
	return fmt.Sprintf("%s-%s-%s", time.Now().Format("20060102"), uuid.New().String(), safe)
}
