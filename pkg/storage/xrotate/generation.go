package xrotate

import (
	"fmt"
	"os"
	"sync"
)

// DefaultFileMode 新建代际文件的默认权限（受 umask 影响）
const DefaultFileMode os.FileMode = 0o644

// RotateEvent 一次成功轮转的描述
type RotateEvent struct {
	// Base 文件族名称
	Base string
	// Index 新的当前编号
	Index int
	// Path 新的当前文件
	Path string
	// Removed 因超出保留上限被删除的文件，未删除时为空
	Removed string
}

// generationConfig 代际轮转器配置
type generationConfig struct {
	// Append 为 true 时以追加方式打开，否则截断
	Append bool

	// Rotate 是否启用轮转
	Rotate bool

	// MaxSize 轮转阈值（字节）；写入后累计大小 >= MaxSize 即轮转
	MaxSize int64

	// MaxFiles 文件族保留上限，0 表示不限制
	MaxFiles int

	// FileMode 新建文件权限
	FileMode os.FileMode

	// Sync 为 true 时 Flush 执行 fsync
	Sync bool

	// OnRotate 每次成功轮转后同步调用
	OnRotate func(RotateEvent)
}

// GenerationOption 代际轮转器配置选项
type GenerationOption func(*generationConfig)

// WithAppend 设置追加（true）或截断（false）模式，构造与轮转时一致使用。
func WithAppend(enabled bool) GenerationOption {
	return func(c *generationConfig) {
		c.Append = enabled
	}
}

// WithRotation 启用轮转，阈值为 maxSize 字节。
// maxSize 为 0 时每次非空写入后都会轮转。
func WithRotation(maxSize int64) GenerationOption {
	return func(c *generationConfig) {
		c.Rotate = true
		c.MaxSize = maxSize
	}
}

// WithMaxFiles 设置文件族保留上限，超出时删除编号最小的文件。
func WithMaxFiles(n int) GenerationOption {
	return func(c *generationConfig) {
		c.MaxFiles = n
	}
}

// WithFileMode 设置新建文件权限
func WithFileMode(mode os.FileMode) GenerationOption {
	return func(c *generationConfig) {
		c.FileMode = mode
	}
}

// WithSync 设置 Flush 是否执行 fsync。
//
// 写入本身不经过用户态缓冲，关闭时 Flush 为空操作，
// 这样 /dev/null 之类不支持 fsync 的字符设备也能作为输出目标。
func WithSync(enabled bool) GenerationOption {
	return func(c *generationConfig) {
		c.Sync = enabled
	}
}

// WithOnRotate 设置轮转回调。
//
// 回调在持有内部锁时同步执行，不得回写同一个 Generation。
func WithOnRotate(fn func(RotateEvent)) GenerationOption {
	return func(c *generationConfig) {
		c.OnRotate = fn
	}
}

// Generation 编号代际文件轮转器
//
// 任意时刻最多持有一个打开的文件。当前编号只在轮转成功时加 1，
// 当前大小只在轮转成功时清零。
type Generation struct {
	mu     sync.Mutex
	base   string
	cfg    generationConfig
	fam    *family
	file   *os.File
	index  int
	size   int64
	files  []Member
	closed bool
}

// OpenGeneration 打开 base 的代际文件族。
//
// 续写最后一个存在的 "{base}.{i}"（都不存在时为 "{base}.0"），
// 当前大小取该文件的现有长度。启用轮转时同时扫描文件族。
// 构造要么完全成功，要么不留下任何打开的文件。
func OpenGeneration(base string, opts ...GenerationOption) (*Generation, error) {
	if base == "" {
		return nil, ErrEmptyFilename
	}

	cfg := generationConfig{FileMode: DefaultFileMode}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := validateGenerationConfig(&cfg); err != nil {
		return nil, err
	}

	fam, err := newFamily(base)
	if err != nil {
		return nil, fmt.Errorf("xrotate: compile family pattern: %w", err)
	}

	g := &Generation{
		base:  base,
		cfg:   cfg,
		fam:   fam,
		index: resumeIndex(base),
	}

	f, err := g.open(g.index)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if cfg.Rotate {
		files, err := fam.scan()
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		g.files = files
	}

	g.file = f
	g.size = info.Size()
	return g, nil
}

// validateGenerationConfig 验证代际轮转器配置
func validateGenerationConfig(cfg *generationConfig) error {
	if cfg.MaxSize < 0 {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidMaxSize, cfg.MaxSize)
	}
	if cfg.MaxFiles < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxFiles, cfg.MaxFiles)
	}
	if cfg.FileMode&^os.FileMode(0o777) != 0 {
		return fmt.Errorf("%w: got %04o, only permission bits (0000~0777) allowed",
			ErrInvalidFileMode, cfg.FileMode)
	}
	return nil
}

// open 按配置打开第 index 代文件，不存在时创建。
func (g *Generation) open(index int) (*os.File, error) {
	flag := os.O_WRONLY | os.O_CREATE
	if g.cfg.Append {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}
	//#nosec G304 -- 输出路径由调用方指定
	return os.OpenFile(GenerationPath(g.base, index), flag, g.cfg.FileMode)
}

// Write 把 p 完整写入当前文件，然后检查轮转阈值。
//
// 阈值在写入完成后检查，p 永远不会被拆分到两个文件。
// 轮转失败时 n 仍为 len(p)（数据已落盘），同时返回轮转错误。
func (g *Generation) Write(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return 0, ErrClosed
	}
	if g.file == nil {
		return 0, ErrNoFile
	}

	// os.File.Write 内部循环直到写完或出错
	n, err := g.file.Write(p)
	g.size += int64(n)
	if err != nil {
		return n, err
	}

	if g.cfg.Rotate && len(p) > 0 && g.size >= g.cfg.MaxSize {
		if err := g.rotate(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Rotate 手动触发轮转，不受阈值和 Rotate 开关约束。
func (g *Generation) Rotate() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ErrClosed
	}
	return g.rotate()
}

// rotate 关闭当前文件，打开下一代文件，刷新文件族并执行保留淘汰。
// 调用方必须持有 g.mu。
func (g *Generation) rotate() error {
	if g.file != nil {
		err := g.file.Close()
		g.file = nil
		if err != nil {
			return err
		}
	}

	next := g.index + 1
	f, err := g.open(next)
	if err != nil {
		return err
	}
	g.file = f
	g.index = next
	g.size = 0

	files, err := g.fam.scan()
	if err != nil {
		return err
	}

	var removed string
	if g.cfg.MaxFiles > 0 && len(files) > g.cfg.MaxFiles {
		oldest := files[0]
		if err := os.Remove(oldest.Path); err != nil && !isNotExist(err) {
			g.files = files
			return err
		}
		files = files[1:]
		removed = oldest.Path
	}
	g.files = files

	if g.cfg.OnRotate != nil {
		g.cfg.OnRotate(RotateEvent{
			Base:    g.base,
			Index:   g.index,
			Path:    GenerationPath(g.base, g.index),
			Removed: removed,
		})
	}
	return nil
}

// Flush 在启用 WithSync 时把当前文件 fsync 到存储设备。
func (g *Generation) Flush() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ErrClosed
	}
	if g.file == nil {
		return ErrNoFile
	}
	if !g.cfg.Sync {
		return nil
	}
	return g.file.Sync()
}

// Close 关闭当前文件，重复调用返回 [ErrClosed]。
func (g *Generation) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ErrClosed
	}
	g.closed = true
	if g.file == nil {
		return nil
	}
	err := g.file.Close()
	g.file = nil
	return err
}

// Base 返回文件族名称
func (g *Generation) Base() string {
	return g.base
}

// Index 返回当前编号
func (g *Generation) Index() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.index
}

// Size 返回自打开或上次轮转以来写入当前文件的字节数
// （追加模式下包含打开时的已有长度）
func (g *Generation) Size() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.size
}

// Path 返回当前文件路径
func (g *Generation) Path() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return GenerationPath(g.base, g.index)
}

// Files 返回保留中的文件族快照，按编号升序。未启用轮转时在首次轮转前为空。
func (g *Generation) Files() []Member {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Member, len(g.files))
	copy(out, g.files)
	return out
}
