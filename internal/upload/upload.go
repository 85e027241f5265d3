// Package upload stores files received over multipart forms and serves out
// their public URL paths. Two naming schemes are in play: branding files keep
// canonical names so a replacement overwrites its predecessor, official
// attachments get a millisecond-timestamp prefix so they never collide.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/barangay-is/barangay-is/internal/config"
)

const (
	// SignaturesDir is the subdirectory for official signature images.
	SignaturesDir = "signatures"
	// ProfilePicturesDir is the subdirectory for official profile pictures.
	ProfilePicturesDir = "profile_pictures"
)

var (
	// ErrUnsupportedType is returned when an upload's extension is not one of
	// the accepted types.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrOutsideStore is returned when a URL path does not map into the store.
	ErrOutsideStore = errors.New("path outside upload store")
)

// allowedExtensions are the upload types accepted across all endpoints.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".pdf":  true,
}

// Store writes uploads below a base directory and maps them to public URLs.
type Store struct {
	dir       string
	urlPrefix string
}

// NewStore creates the base directory and its attachment subdirectories.
func NewStore(cfg config.Uploads) (*Store, error) {
	for _, dir := range []string{
		cfg.Dir,
		filepath.Join(cfg.Dir, SignaturesDir),
		filepath.Join(cfg.Dir, ProfilePicturesDir),
	} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, errors.Wrapf(err, "failed to create upload directory %s", dir)
		}
	}

	return &Store{
		dir:       cfg.Dir,
		urlPrefix: strings.TrimSuffix(cfg.URLPrefix, "/"),
	}, nil
}

// Dir exposes the base directory for static serving.
func (s *Store) Dir() string {
	return s.dir
}

// URLPrefix exposes the public path prefix the files are served under.
func (s *Store) URLPrefix() string {
	return s.urlPrefix
}

// SaveLogo stores a branding logo under the canonical name Logo<ext> and
// returns its public URL path.
func (s *Store) SaveLogo(fh *multipart.FileHeader) (string, error) {
	return s.saveCanonical(fh, "Logo")
}

// SaveBackground stores a branding background under the canonical name
// Background<ext> and returns its public URL path.
func (s *Store) SaveBackground(fh *multipart.FileHeader) (string, error) {
	return s.saveCanonical(fh, "Background")
}

// SaveSignature stores an official's signature image under a timestamped
// name and returns its public URL path.
func (s *Store) SaveSignature(fh *multipart.FileHeader) (string, error) {
	return s.saveTimestamped(fh, SignaturesDir)
}

// SaveProfileImage stores an official's profile picture under a timestamped
// name and returns its public URL path.
func (s *Store) SaveProfileImage(fh *multipart.FileHeader) (string, error) {
	return s.saveTimestamped(fh, ProfilePicturesDir)
}

// Retire removes a superseded file asynchronously. Failures are logged and
// swallowed, a stale file on disk never fails the request that replaced it.
func (s *Store) Retire(urlPath string) {
	if urlPath == "" {
		return
	}

	go func() {
		if err := s.remove(urlPath); err != nil {
			log.Warn().Err(err).Str("path", urlPath).Msg("failed to retire upload")

			return
		}

		log.Debug().Str("path", urlPath).Msg("retired superseded upload")
	}()
}

func (s *Store) remove(urlPath string) error {
	diskPath, err := s.diskPath(urlPath)
	if err != nil {
		return err
	}

	if err := os.Remove(diskPath); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove upload")
	}

	return nil
}

// diskPath maps a public URL path back onto the store, rejecting anything
// that would escape the base directory.
func (s *Store) diskPath(urlPath string) (string, error) {
	if !strings.HasPrefix(urlPath, s.urlPrefix+"/") {
		return "", ErrOutsideStore
	}

	rel := path.Clean(strings.TrimPrefix(urlPath, s.urlPrefix+"/"))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") || path.IsAbs(rel) {
		return "", ErrOutsideStore
	}

	return filepath.Join(s.dir, filepath.FromSlash(rel)), nil
}

func (s *Store) saveCanonical(fh *multipart.FileHeader, canonical string) (string, error) {
	ext, err := checkExtension(fh.Filename)
	if err != nil {
		return "", err
	}

	name := canonical + ext
	if err := s.write(fh, filepath.Join(s.dir, name)); err != nil {
		return "", err
	}

	return s.urlPrefix + "/" + name, nil
}

func (s *Store) saveTimestamped(fh *multipart.FileHeader, subdir string) (string, error) {
	if _, err := checkExtension(fh.Filename); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(fh.Filename))
	if err := s.write(fh, filepath.Join(s.dir, subdir, name)); err != nil {
		return "", err
	}

	return s.urlPrefix + "/" + subdir + "/" + name, nil
}

func (s *Store) write(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open upload")
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "failed to create upload file")
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return errors.Wrap(err, "failed to write upload file")
	}

	return nil
}

func checkExtension(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	return ext, nil
}

// sanitizeName strips any path components and characters that do not belong
// in a filename we generate.
func sanitizeName(filename string) string {
	base := path.Base(filepath.ToSlash(filename))

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
