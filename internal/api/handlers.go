package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/bandwise/internal/scoring"
	"github.com/abhisek/bandwise/internal/session"
	"github.com/abhisek/bandwise/internal/skill"
)

const (
	defaultTargetBand = 7.0
	defaultPlanWeeks  = 8
	sessionKey        = "session"
)

type skillRequest struct {
	Skill string `json:"skill"`
}

type questionRequest struct {
	Skill      string `json:"skill"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

type languageRequest struct {
	Language string `json:"language"`
}

type translateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

func (h *handler) loadSession(c *gin.Context) {
	s, err := h.svc.Session(c.Param("user"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Set(sessionKey, s)
	c.Next()
}

func sessionFrom(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

func bind(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func (h *handler) syllabus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": skill.Syllabus()})
}

func (h *handler) vocabulary(c *gin.Context) {
	c.JSON(http.StatusOK, scoring.Vocabulary(skill.LevelOrDefault(c.Param("level"))))
}

func (h *handler) translate(c *gin.Context) {
	var req translateRequest
	if err := bind(c, &req); err != nil {
		h.fail(c, err)
		return
	}
	target := session.Arabic
	if req.Target != "" {
		var err error
		if target, err = session.ParseLanguage(req.Target); err != nil {
			h.fail(c, err)
			return
		}
	}
	out, err := h.svc.Translate(c.Request.Context(), req.Text, target)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": req.Text, "target": target, "translation": out})
}

func (h *handler) startPractice(c *gin.Context) {
	var req skillRequest
	if err := bind(c, &req); err != nil {
		h.fail(c, err)
		return
	}
	sk, err := skill.ParseSkill(req.Skill)
	if err != nil {
		h.fail(c, err)
		return
	}
	q, err := h.svc.StartPractice(c.Request.Context(), sessionFrom(c), sk)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"question": q})
}

func (h *handler) archivedQuestion(c *gin.Context) {
	var req questionRequest
	if err := bind(c, &req); err != nil {
		h.fail(c, err)
		return
	}
	sk, err := skill.ParseSkill(req.Skill)
	if err != nil {
		h.fail(c, err)
		return
	}
	q, err := h.svc.ArchivedQuestion(c.Request.Context(), sessionFrom(c), sk, req.Type)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"question": q})
}

func (h *handler) generatedQuestion(c *gin.Context) {
	var req questionRequest
	if err := bind(c, &req); err != nil {
		h.fail(c, err)
		return
	}
	sk, err := skill.ParseSkill(req.Skill)
	if err != nil {
		h.fail(c, err)
		return
	}
	diff, err := skill.ParseDifficulty(req.Difficulty)
	if err != nil {
		h.fail(c, err)
		return
	}
	q, err := h.svc.GenerateQuestion(c.Request.Context(), sessionFrom(c), sk, req.Type, diff)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"question": q})
}

func (h *handler) skip(c *gin.Context) {
	q, err := h.svc.Skip(c.Request.Context(), sessionFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"question": q})
}

func (h *handler) currentQuestion(c *gin.Context) {
	q, ok := h.svc.CurrentQuestion(sessionFrom(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": session.ErrNoPendingQuestion.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"question": q})
}

func (h *handler) submitAnswer(c *gin.Context) {
	var req answerRequest
	if err := bind(c, &req); err != nil {
		h.fail(c, err)
		return
	}
	out, err := h.svc.SubmitAnswer(c.Request.Context(), sessionFrom(c), req.Answer)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) history(c *gin.Context) {
	s := sessionFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"history":  h.svc.History(s),
		"attempts": h.svc.Attempts(s),
	})
}

func (h *handler) scores(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"skills": h.svc.ScoreSummary(sessionFrom(c))})
}

func (h *handler) dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Dashboard(sessionFrom(c)))
}

func (h *handler) projection(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Projection(sessionFrom(c)))
}

func (h *handler) plan(c *gin.Context) {
	target := defaultTargetBand
	if v := c.Query("target"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			h.fail(c, fmt.Errorf("%w: target %q is not a number", errBadRequest, v))
			return
		}
		target = f
	}
	weeks := defaultPlanWeeks
	if v := c.Query("weeks"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.fail(c, fmt.Errorf("%w: weeks %q is not an integer", errBadRequest, v))
			return
		}
		weeks = n
	}

	p, err := h.svc.StudyPlan(sessionFrom(c), target, weeks)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handler) setLanguage(c *gin.Context) {
	var req languageRequest
	if err := bind(c, &req); err != nil {
		h.fail(c, err)
		return
	}
	lang, err := session.ParseLanguage(req.Language)
	if err != nil {
		h.fail(c, err)
		return
	}
	s := sessionFrom(c)
	if err := h.svc.SetDisplayLanguage(s, lang); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.View())
}
