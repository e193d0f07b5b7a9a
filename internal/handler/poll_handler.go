package handler

import (
	"fmt"
	"html/template"
	"net/http"

	"yatube/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PollHandler struct {
	svc *service.PollService
}

func NewPollHandler(db *gorm.DB) *PollHandler {
	return &PollHandler{svc: service.NewPollService(db)}
}

func (h *PollHandler) Questions(c *gin.Context) {
	questions, err := h.svc.Questions()
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "question_list.html", gin.H{
		"questions_list": questions,
	})
}

func (h *PollHandler) Question(c *gin.Context) {
	questionID, ok := parseID(c, "id")
	if !ok {
		return
	}
	question, choices, err := h.svc.Question(questionID)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "question.html", gin.H{
		"question": question,
		"choices":  choices,
	})
}

// Vote increments the submitted choice once and sends the voter to the
// chart. A missing or unknown choice is a 404.
func (h *PollHandler) Vote(c *gin.Context) {
	questionID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Vote(c.PostForm("choice")); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/polls/%d/chart/", questionID))
}

func (h *PollHandler) Chart(c *gin.Context) {
	questionID, ok := parseID(c, "id")
	if !ok {
		return
	}
	chart, question, err := h.svc.Chart(questionID)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "chart.html", gin.H{
		"question": question,
		"chart":    template.JS(chart),
	})
}
