// Package form defines the validated shapes for the two mutable
// entities, post and comment, plus the human-readable field metadata
// the templates render.
package form

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PostForm is the post-edit shape: required text, optional group,
// optional image. The group and image parts are read from the request
// by the handler; an empty group select must stay nil, which rules out
// automatic pointer binding.
type PostForm struct {
	Text  string  `form:"text" binding:"required"`
	Group *uint64 `form:"-"`
}

// CommentForm is the comment shape.
type CommentForm struct {
	Text string `form:"text" binding:"required"`
}

var Labels = map[string]string{
	"text":  "Тут будет пост",
	"group": "А вот тут - группа",
}

var HelpTexts = map[string]string{
	"text":    "Вот прям сюда пиши!",
	"group":   "Группа, к которой будет относиться пост",
	"comment": "Сюда комментарий пиши",
}

const (
	msgRequired = "Обязательное поле."
	msgInvalid  = "Некорректное значение."
)

// FieldErrors converts a gin binding error into a field → message map.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["__all__"] = msgInvalid
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		if fe.Tag() == "required" {
			out[field] = msgRequired
		} else {
			out[field] = msgInvalid
		}
	}
	return out
}
