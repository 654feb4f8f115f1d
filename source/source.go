package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/framesplice/clip"
)

// Sentinel errors for clip loading.
var (
	// ErrExternalIndexerRequired indicates a container format that
	// must be indexed externally before loading.
	ErrExternalIndexerRequired = errors.New("container requires an external indexer")

	// ErrNoIndexer indicates no indexer is registered under the name
	// the dispatch selected.
	ErrNoIndexer = errors.New("no indexer registered")

	// ErrPlaylistFlagRequired indicates an .mpls path was given
	// without enabling playlist loading.
	ErrPlaylistFlagRequired = errors.New("playlist loading not enabled for mpls input")
)

// Well-known indexer names the dispatch selects between.
const (
	IndexerLSMAS   = "lsmas"
	IndexerFFMS2   = "ffms2"
	IndexerD2V     = "d2v"
	IndexerDGIndex = "dgindex"
	IndexerImage   = "image"
	IndexerMPLS    = "mpls"
)

// Containers that are better off being indexed externally.
var annoyingFormats = map[string]bool{
	".iso": true,
	".ts":  true,
	".vob": true,
}

var imageFormats = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// Indexer produces a clip from a media file. Implementations wrap the
// host environment's actual demuxing and decoding.
type Indexer interface {
	// Name identifies the indexer in logs and errors.
	Name() string

	// Index opens the file and returns its clip.
	Index(path string, params Params) (clip.Clip, error)
}

// Params is passed through to the selected indexer.
type Params struct {
	// FPSNum and FPSDen override the container's frame rate when both
	// are non-zero.
	FPSNum int
	FPSDen int

	// Playlist and Angle select within an mpls playlist.
	Playlist int
	Angle    int
}

// Options configures Load.
type Options struct {
	// ForceLSMAS routes every non-special container to the lsmas
	// indexer instead of ffms2.
	ForceLSMAS bool

	// MPLS enables Blu-ray playlist loading for .mpls paths.
	MPLS bool

	// Params is handed to whichever indexer is selected.
	Params Params
}

// Loader dispatches file paths to registered indexers.
type Loader struct {
	indexers map[string]Indexer
}

// NewLoader creates a loader with no indexers registered. Hosts
// register the indexers they actually provide.
func NewLoader() *Loader {
	return &Loader{indexers: make(map[string]Indexer)}
}

// Register installs an indexer under name, replacing any previous one.
func (l *Loader) Register(name string, idx Indexer) {
	logrus.WithFields(logrus.Fields{
		"function": "Loader.Register",
		"name":     name,
		"indexer":  idx.Name(),
	}).Info("Registering clip indexer")
	l.indexers[name] = idx
}

// Load opens the file at path with the indexer appropriate for its
// container format. file:/// prefixes are stripped first.
func (l *Loader) Load(path string, opts Options) (clip.Clip, error) {
	path = strings.TrimPrefix(path, "file:///")
	ext := strings.ToLower(filepath.Ext(path))

	logrus.WithFields(logrus.Fields{
		"function":  "Loader.Load",
		"path":      path,
		"extension": ext,
	}).Debug("Loading clip from file")

	name, err := pickIndexer(ext, opts)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Loader.Load",
			"path":     path,
			"error":    err.Error(),
		}).Error("Indexer dispatch failed")
		return nil, fmt.Errorf("load %q: %w", path, err)
	}

	idx, ok := l.indexers[name]
	if !ok {
		return nil, fmt.Errorf("load %q: %w: %q", path, ErrNoIndexer, name)
	}

	out, err := idx.Index(path, opts.Params)
	if err != nil {
		return nil, fmt.Errorf("load %q via %s: %w", path, idx.Name(), err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Loader.Load",
		"path":     path,
		"indexer":  idx.Name(),
		"length":   out.Length(),
	}).Info("Clip loaded")

	return out, nil
}

// pickIndexer maps a container extension to an indexer name. One case
// per format; no fallthrough between variants.
func pickIndexer(ext string, opts Options) (string, error) {
	switch {
	case annoyingFormats[ext]:
		return "", fmt.Errorf("%w: %s files need d2vwitch or DGIndexNV", ErrExternalIndexerRequired, ext)
	case ext == ".mpls" && !opts.MPLS:
		return "", fmt.Errorf("%w: set Options.MPLS and pass the base Blu-ray directory", ErrPlaylistFlagRequired)
	case ext == ".mpls":
		return IndexerMPLS, nil
	case ext == ".d2v":
		return IndexerD2V, nil
	case ext == ".dgi":
		return IndexerDGIndex, nil
	case imageFormats[ext]:
		return IndexerImage, nil
	case ext == ".m2ts" || opts.ForceLSMAS:
		return IndexerLSMAS, nil
	default:
		return IndexerFFMS2, nil
	}
}
