package pkg

// FieldErrors 按字段聚合的校验错误，直接作为 400 响应体返回，
// 客户端可以逐个字段高亮展示
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e FieldErrors) Any() bool {
	return len(e) > 0
}
