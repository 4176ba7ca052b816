package record

import (
	"encoding/base64"
	"fmt"
	"io"
)

// EncodingError 附件读取/编码失败
type EncodingError struct {
	Name string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("附件 %q 编码失败: %v", e.Name, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// EncodedFile 传输安全的附件表示（data-URL 形式，自描述前缀 + base64 载荷）
type EncodedFile struct {
	Name        string
	ContentType string
	DataURL     string
}

// EncodeAttachment 将文件内容编码为 data-URL
//
// 对任意二进制内容确定性编码；除读取文件外无其他副作用。
// 读取失败（I/O 错误、句柄失效）返回 *EncodingError，提交流程必须中止，
// 不发送部分载荷。
func EncodeAttachment(name, contentType string, r io.Reader) (*EncodedFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &EncodingError{Name: name, Err: err}
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &EncodedFile{
		Name:        name,
		ContentType: contentType,
		DataURL:     "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}
