// Package xrotate 提供按大小轮转的文件写入器。
//
// Rotator 接口定义了轮转器的核心行为（Write/Close/Rotate），所有实现并发安全。
//
// # 当前实现
//
//   - [OpenGeneration]: 编号代际文件族 "{base}.0"、"{base}.1"…，
//     写入后累计字节数达到阈值即切换到下一个编号，可限制保留数量。
//     供 xtee 的文件输出端使用。
//   - [NewLumberjack]: 基于 lumberjack v2 的按大小轮转（时间戳备份名），
//     供 xlog 的诊断日志文件使用。
//
// # 代际文件族
//
// 启动时从 "{base}.0" 向上逐个探测，续写最后一个存在的编号，不会新建编号。
// 轮转阈值在写入完成后检查，单次 Write 的数据永远完整落在同一个文件中。
// 文件族按编号数值升序排列（"{base}.10" 排在 "{base}.9" 之后），
// 只有后缀全为数字的文件属于文件族，"{base}.log" 之类的同前缀文件不会被删除。
//
// # 错误
//
// I/O 失败保留操作系统错误链（*fs.PathError），可用 errors.Is 判断
// syscall.Errno；状态类错误使用包级哨兵错误（[ErrClosed]、[ErrNoFile]）。
package xrotate
