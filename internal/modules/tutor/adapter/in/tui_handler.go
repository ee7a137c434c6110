package in

import (
	"context"

	"pontutor/internal/modules/tutor/dto"
	tutorin "pontutor/internal/modules/tutor/port/in"
)

type TUIHandler struct {
	usecase tutorin.Usecase
}

func NewTUIHandler(usecase tutorin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) OpenView(ctx context.Context) (tutorin.View, error) {
	return h.usecase.OpenView(ctx)
}

func (h TUIHandler) Print(ctx context.Context, title string, view dto.ViewOutput, body string) (dto.PrintOutput, error) {
	return h.usecase.Print(ctx, dto.PrintInput{Title: title, View: view, Body: body})
}
