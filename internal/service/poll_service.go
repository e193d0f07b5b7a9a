package service

import (
	"encoding/json"
	"fmt"
	"strconv"

	"yatube/internal/model"
	"yatube/internal/repository/mysql"

	"gorm.io/gorm"
)

type PollService struct {
	repo *mysql.PollRepository
}

func NewPollService(db *gorm.DB) *PollService {
	return &PollService{repo: &mysql.PollRepository{DB: db}}
}

func (s *PollService) Questions() ([]model.Question, error) {
	return s.repo.ListQuestions()
}

func (s *PollService) Question(id uint64) (*model.Question, []model.Choice, error) {
	question, err := s.repo.FindQuestion(id)
	if err != nil {
		return nil, nil, err
	}
	choices, err := s.repo.ListChoices(id)
	if err != nil {
		return nil, nil, err
	}
	return question, choices, nil
}

// Vote bumps the submitted choice's counter by exactly one. A missing,
// non-integer, or unknown choice id comes back as
// gorm.ErrRecordNotFound so the handler can 404.
func (s *PollService) Vote(choiceField string) error {
	choiceID, err := strconv.ParseUint(choiceField, 10, 64)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	return s.repo.AddVote(choiceID)
}

// Chart projects a question's choices into a column-chart config and
// serializes it for the template.
func (s *PollService) Chart(questionID uint64) (string, *model.Question, error) {
	question, err := s.repo.FindQuestion(questionID)
	if err != nil {
		return "", nil, err
	}
	choices, err := s.repo.ListChoices(questionID)
	if err != nil {
		return "", nil, err
	}

	categories := make([]string, 0, len(choices))
	data := make([]int64, 0, len(choices))
	for _, ch := range choices {
		categories = append(categories, ch.Text)
		data = append(data, ch.Votes)
	}
	chart := map[string]any{
		"chart": map[string]any{"type": "column"},
		"title": map[string]any{"text": fmt.Sprintf("Количество голосов в опросе %s.", question.Text)},
		"xAxis": map[string]any{"categories": categories},
		"series": []map[string]any{{
			"name":  "Количество голосов",
			"data":  data,
			"color": "green",
		}},
	}
	dump, err := json.Marshal(chart)
	if err != nil {
		return "", nil, err
	}
	return string(dump), question, nil
}
