package xrotate

import (
	"cmp"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/gobwas/glob"
)

// Member 文件族中的一个代际文件
type Member struct {
	// Index 文件名中的数字后缀
	Index int
	// Path 文件路径（与 base 位于同一目录）
	Path string
}

// GenerationPath 返回 base 的第 index 代文件名："{base}.{index}"，无前导零。
func GenerationPath(base string, index int) string {
	return base + "." + strconv.Itoa(index)
}

// family 描述同一 base 的代际文件族
type family struct {
	dir    string
	prefix string
	match  glob.Glob
}

// newFamily 为 base 编译文件族匹配模式 "{name}.*"。
func newFamily(base string) (*family, error) {
	prefix := filepath.Base(base)
	g, err := glob.Compile(glob.QuoteMeta(prefix) + ".*")
	if err != nil {
		return nil, err
	}
	return &family{
		dir:    filepath.Dir(base),
		prefix: prefix,
		match:  g,
	}, nil
}

// index 解析文件名的代际编号；不属于文件族时返回 false。
func (f *family) index(name string) (int, bool) {
	if !f.match.Match(name) {
		return 0, false
	}
	suffix := name[len(f.prefix)+1:]
	if suffix == "" {
		return 0, false
	}
	for i := 0; i < len(suffix); i++ {
		if suffix[i] < '0' || suffix[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		// 超出 int 范围的编号不可能由本包产生
		return 0, false
	}
	return n, true
}

// scan 列出目录中属于文件族的普通文件，按编号数值升序排列。
func (f *family) scan() ([]Member, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, err
	}

	members := make([]Member, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		idx, ok := f.index(e.Name())
		if !ok {
			continue
		}
		members = append(members, Member{
			Index: idx,
			Path:  filepath.Join(f.dir, e.Name()),
		})
	}
	slices.SortFunc(members, func(a, b Member) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return members, nil
}

// resumeIndex 从 0 开始逐个探测 "{base}.{i}"，返回最后一个存在的编号。
// 一个都不存在时返回 0。
//
// 探测不感知保留上限：".0" 被淘汰后重启会重新从 ".0" 开始写。
func resumeIndex(base string) int {
	index := 0
	for {
		if _, err := os.Stat(GenerationPath(base, index)); err != nil {
			break
		}
		index++
	}
	if index > 0 {
		index--
	}
	return index
}

// isNotExist 报告 err 是否表示文件不存在
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
