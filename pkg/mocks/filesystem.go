package mocks

import (
	"io/fs"
	"os"
	"time"

	"github.com/user/eventreel/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem.
type FileSystem struct {
	ReadDirFunc   func(path string) ([]os.DirEntry, error)
	StatFunc      func(path string) (os.FileInfo, error)
	MkdirAllFunc  func(path string) error
	MkdirTempFunc func(dir, pattern string) (string, error)
	SymlinkFunc   func(oldname, newname string) error
	RemoveAllFunc func(path string) error
	ExistsFunc    func(path string) (bool, error)

	// Recorded calls for verification
	ReadDirCalls   []string
	StatCalls      []string
	MkdirAllCalls  []string
	MkdirTempCalls int
	SymlinkCalls   []SymlinkCall
	RemoveAllCalls []string
}

// SymlinkCall records a call to Symlink.
type SymlinkCall struct {
	Oldname string
	Newname string
}

func (m *FileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	m.ReadDirCalls = append(m.ReadDirCalls, path)
	if m.ReadDirFunc != nil {
		return m.ReadDirFunc(path)
	}
	return nil, nil
}

func (m *FileSystem) Stat(path string) (os.FileInfo, error) {
	m.StatCalls = append(m.StatCalls, path)
	if m.StatFunc != nil {
		return m.StatFunc(path)
	}
	return nil, os.ErrNotExist
}

func (m *FileSystem) MkdirAll(path string) error {
	m.MkdirAllCalls = append(m.MkdirAllCalls, path)
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path)
	}
	return nil
}

func (m *FileSystem) MkdirTemp(dir, pattern string) (string, error) {
	m.MkdirTempCalls++
	if m.MkdirTempFunc != nil {
		return m.MkdirTempFunc(dir, pattern)
	}
	return "/tmp/mockstage", nil
}

func (m *FileSystem) Symlink(oldname, newname string) error {
	m.SymlinkCalls = append(m.SymlinkCalls, SymlinkCall{Oldname: oldname, Newname: newname})
	if m.SymlinkFunc != nil {
		return m.SymlinkFunc(oldname, newname)
	}
	return nil
}

func (m *FileSystem) RemoveAll(path string) error {
	m.RemoveAllCalls = append(m.RemoveAllCalls, path)
	if m.RemoveAllFunc != nil {
		return m.RemoveAllFunc(path)
	}
	return nil
}

func (m *FileSystem) Exists(path string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	return false, nil
}

var _ ports.FileSystem = (*FileSystem)(nil)

// DirEntry is a fake fs.DirEntry for directory listings in tests.
type DirEntry struct {
	EntryName  string
	Dir        bool
	InfoResult os.FileInfo
	InfoErr    error
}

func (d DirEntry) Name() string { return d.EntryName }

func (d DirEntry) IsDir() bool { return d.Dir }

func (d DirEntry) Type() fs.FileMode {
	if d.Dir {
		return fs.ModeDir
	}
	return 0
}
func (d DirEntry) Info() (os.FileInfo, error) {
	if d.InfoErr != nil {
		return nil, d.InfoErr
	}
	if d.InfoResult != nil {
		return d.InfoResult, nil
	}
	return FileInfo{FileName: d.EntryName, Dir: d.Dir}, nil
}

var _ os.DirEntry = DirEntry{}

// FileInfo is a fake os.FileInfo for metadata in tests.
type FileInfo struct {
	FileName string
	FileSize int64
	Dir      bool
	Mod      time.Time
}

func (f FileInfo) Name() string { return f.FileName }

func (f FileInfo) Size() int64 { return f.FileSize }

func (f FileInfo) Mode() fs.FileMode {
	if f.Dir {
		return fs.ModeDir
	}
	return 0
}

func (f FileInfo) ModTime() time.Time { return f.Mod }

func (f FileInfo) IsDir() bool { return f.Dir }

func (f FileInfo) Sys() interface{} { return nil }

var _ os.FileInfo = FileInfo{}
