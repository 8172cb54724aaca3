// Package config
package config

import "fmt"

// ValidResult 配置校验结果, err 为空表示通过
type ValidResult struct {
	err       error
	originErr error
}

var validPass = &ValidResult{}

func ValidPass() *ValidResult { return validPass }

func ValidFail(err error) *ValidResult {
	return &ValidResult{err: err}
}

func ValidFailWith(err error, originErr error) *ValidResult {
	return &ValidResult{err: err, originErr: originErr}
}

func (r *ValidResult) IsFail() bool { return r.err != nil }

// Error 返回失败原因, 有底层错误时一并包装, 可以用 errors.Is 判断
func (r *ValidResult) Error() error {
	if r.err == nil || r.originErr == nil {
		return r.err
	}
	return fmt.Errorf("%w: %w", r.err, r.originErr)
}
