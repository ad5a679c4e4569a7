package xsink

import "github.com/omeyang/xtee/pkg/storage/xrotate"

var _ Sink = (*Rotating)(nil)

// Rotating 轮转文件输出端
type Rotating struct {
	gen *xrotate.Generation
}

// OpenRotating 打开 base 对应的代际文件族并创建输出端。
//
// 失败时不会留下打开的文件，错误保留操作系统错误链。
func OpenRotating(base string, opts ...xrotate.GenerationOption) (*Rotating, error) {
	gen, err := xrotate.OpenGeneration(base, opts...)
	if err != nil {
		return nil, err
	}
	return &Rotating{gen: gen}, nil
}

// Name 返回文件族名称（用户给出的路径）
func (r *Rotating) Name() string { return r.gen.Base() }

// Kind 返回 [KindRotatingFile]
func (r *Rotating) Kind() Kind { return KindRotatingFile }

// Write 写入当前代际文件，写入后按阈值轮转
func (r *Rotating) Write(p []byte) (int, error) {
	return r.gen.Write(p)
}

// Flush 刷新当前代际文件
func (r *Rotating) Flush() error {
	return r.gen.Flush()
}

// Close 关闭当前代际文件
func (r *Rotating) Close() error {
	return r.gen.Close()
}

// Generation 返回底层轮转器，用于查询编号和文件族
func (r *Rotating) Generation() *xrotate.Generation {
	return r.gen
}
