package mysql

import (
	"yatube/internal/model"

	"gorm.io/gorm"
)

type PollRepository struct {
	DB *gorm.DB
}

func (r *PollRepository) CreateQuestion(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *PollRepository) ListQuestions() ([]model.Question, error) {
	var list []model.Question
	err := r.DB.Order("pub_date DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *PollRepository) FindQuestion(id uint64) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

// ListChoices returns a question's choices in table order.
func (r *PollRepository) ListChoices(questionID uint64) ([]model.Choice, error) {
	var list []model.Choice
	err := r.DB.Where("question_id = ?", questionID).Order("id").Find(&list).Error
	return list, err
}

func (r *PollRepository) FindChoice(id uint64) (*model.Choice, error) {
	var c model.Choice
	err := r.DB.First(&c, id).Error
	return &c, err
}

// AddVote bumps the counter with a single UPDATE so concurrent votes
// cannot lose increments. Returns gorm.ErrRecordNotFound for an
// unknown choice.
func (r *PollRepository) AddVote(choiceID uint64) error {
	tx := r.DB.Model(&model.Choice{}).
		Where("id = ?", choiceID).
		UpdateColumn("votes", gorm.Expr("votes + 1"))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
