package assets

import (
	"embed"
	"io/fs"

	"github.com/redfox/tatakai/shared/arenadata"
)

var (
	//go:embed all:arenas
	assetFS embed.FS
)

type ArenaLoader struct {
	fsys  fs.FS
	cache map[int]*arenadata.Arena
}

// NewArenaLoader returns a loader over the embedded arenas.
func NewArenaLoader() *ArenaLoader {
	return NewArenaLoaderFS(assetFS)
}

// NewArenaLoaderFS returns a loader reading arenas/arena<N>.tmx from fsys.
func NewArenaLoaderFS(fsys fs.FS) *ArenaLoader {
	return &ArenaLoader{
		fsys:  fsys,
		cache: make(map[int]*arenadata.Arena),
	}
}

// Load returns the arena with the given index, parsing it on first use.
func (l *ArenaLoader) Load(index int) (*arenadata.Arena, error) {
	if a, ok := l.cache[index]; ok {
		return a, nil
	}
	a, err := arenadata.LoadArena(l.fsys, arenadata.ArenaPath(index))
	if err != nil {
		return nil, err
	}
	l.cache[index] = a
	return a, nil
}
