package store

import (
	"context"
	"fmt"
	"time"
)

const answerEventColumns = `id, sequence, timestamp, session_id, user_id, skill, question_type,
	difficulty, source, question_text, correct_answer, submitted, correct, score`

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO answer_events (
		sequence, timestamp, session_id, user_id, skill, question_type, difficulty,
		source, question_text, correct_answer, submitted, correct, score
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum,
		formatTime(time.Now()),
		data.SessionID,
		data.UserID,
		data.Skill,
		data.QuestionType,
		data.Difficulty,
		data.Source,
		data.QuestionText,
		data.CorrectAnswer,
		data.Submitted,
		boolToInt(data.Correct),
		data.Score,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error) {
	where, args := buildWhere(opts)
	limit, limitArgs := buildLimit(opts)
	query := `SELECT ` + answerEventColumns + ` FROM answer_events` + where +
		` ORDER BY sequence DESC` + limit

	rows, err := r.db.QueryContext(ctx, query, append(args, limitArgs...)...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEventRecord
	for rows.Next() {
		var rec AnswerEventRecord
		var ts string
		var correct int
		if err := rows.Scan(
			&rec.ID,
			&rec.Sequence,
			&ts,
			&rec.SessionID,
			&rec.UserID,
			&rec.Skill,
			&rec.QuestionType,
			&rec.Difficulty,
			&rec.Source,
			&rec.QuestionText,
			&rec.CorrectAnswer,
			&rec.Submitted,
			&correct,
			&rec.Score,
		); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		rec.Timestamp = parseTime(ts)
		rec.Correct = correct != 0
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answer events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) AnswerStatsBySkill(ctx context.Context) ([]AnswerStats, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT skill, COUNT(*), SUM(correct), COUNT(DISTINCT user_id)
		FROM answer_events GROUP BY skill ORDER BY skill`)
	if err != nil {
		return nil, fmt.Errorf("query answer stats: %w", err)
	}
	defer rows.Close()

	var out []AnswerStats
	for rows.Next() {
		var s AnswerStats
		if err := rows.Scan(&s.Skill, &s.Answers, &s.Correct, &s.Users); err != nil {
			return nil, fmt.Errorf("scan answer stats: %w", err)
		}
		if s.Answers > 0 {
			s.Accuracy = float64(s.Correct) / float64(s.Answers)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
