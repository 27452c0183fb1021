package snap

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Walk builds a snapshot of the filesystem rooted at root. Stat fields are
// captured for files so the size and modified tiebreakers work without a
// separate lookup; birth time is left zero where the platform does not
// expose it. Children are listed name-sorted so the snapshot is independent
// of readdir enumeration order.
func Walk(root string) (*Directory, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}
	return walkDir(abs, filepath.Base(abs))
}

func walkDir(path, name string) (*Directory, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", path, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	dir := &Directory{Name: name, Path: path}
	for _, entry := range entries {
		childPath := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			child, err := walkDir(childPath, entry.Name())
			if err != nil {
				return nil, err
			}
			dir.Children = append(dir.Children, child)
			continue
		}
		f := &File{Name: entry.Name(), Path: childPath}
		if info, err := entry.Info(); err == nil {
			f.Info = &StatInfo{Size: info.Size(), ModTime: info.ModTime()}
		}
		dir.Children = append(dir.Children, f)
	}
	return dir, nil
}
