package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bandwise/internal/question"
	"github.com/abhisek/bandwise/internal/session"
	"github.com/abhisek/bandwise/internal/skill"
	"github.com/abhisek/bandwise/internal/ui/theme"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <skill>",
	Short: "Practice one skill interactively in the terminal",
	Long: "Practice serves questions for listening, reading, writing or speaking and grades\n" +
		"each answer. Type :help at the prompt for commands.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sk, err := skill.ParseSkill(args[0])
		if err != nil {
			return err
		}
		user, _ := cmd.Flags().GetString("user")
		generate, _ := cmd.Flags().GetBool("generate")
		arabic, _ := cmd.Flags().GetBool("arabic")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := buildService(cmd.Context(), st, stderrLogger())
		if err != nil {
			return err
		}
		s, err := svc.Session(user)
		if err != nil {
			return err
		}
		if arabic {
			if err := svc.SetDisplayLanguage(s, session.Arabic); err != nil {
				return err
			}
		}

		p := &practiceLoop{svc: svc, s: s, sk: sk, generate: generate, out: cmd.OutOrStdout()}
		return p.run(cmd.Context(), cmd.InOrStdin())
	},
}

func init() {
	practiceCmd.Flags().StringP("user", "u", "local", "User ID for the practice session")
	practiceCmd.Flags().BoolP("generate", "g", false, "Generate fresh questions with the LLM instead of using the archive")
	practiceCmd.Flags().Bool("arabic", false, "Show Arabic translations of each question")
}

type practiceLoop struct {
	svc      *session.Service
	s        *session.Session
	sk       skill.Skill
	generate bool
	out      io.Writer
}

const practiceHelp = `Commands:
  :skip          another question
  :gen [type]    generate a question (e.g. :gen Multiple Choice)
  :lang en|ar    switch display language
  :score         show projected bands
  :quit          end practice
Anything else is submitted as your answer.`

func (p *practiceLoop) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(p.out, theme.Title.Render("Bandwise · "+p.sk.DisplayName()+" practice"))
	fmt.Fprintln(p.out, theme.Hint.Render("Type :help for commands."))

	if err := p.next(ctx, ""); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(p.out, theme.Label.Render("> "))
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			if err := p.answer(ctx, line); err != nil {
				return err
			}
			continue
		}

		name, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
		switch strings.ToLower(name) {
		case "q", "quit", "exit":
			p.printScore()
			return nil
		case "help":
			fmt.Fprintln(p.out, theme.Hint.Render(practiceHelp))
		case "skip":
			q, err := p.svc.Skip(ctx, p.s)
			if err != nil {
				return err
			}
			p.printQuestion(q)
		case "gen":
			q, err := p.svc.GenerateQuestion(ctx, p.s, p.sk, strings.TrimSpace(arg), skill.Medium)
			if err != nil {
				return err
			}
			p.printQuestion(q)
		case "lang":
			lang, err := session.ParseLanguage(arg)
			if err != nil {
				fmt.Fprintln(p.out, theme.Incorrect.Render(err.Error()))
				continue
			}
			if err := p.svc.SetDisplayLanguage(p.s, lang); err != nil {
				return err
			}
			fmt.Fprintln(p.out, theme.Hint.Render("Display language: "+string(lang)))
		case "score":
			p.printScore()
		default:
			fmt.Fprintln(p.out, theme.Incorrect.Render("unknown command :"+name))
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	p.printScore()
	return nil
}

func (p *practiceLoop) next(ctx context.Context, questionType string) error {
	var (
		q   question.Question
		err error
	)
	if p.generate {
		q, err = p.svc.GenerateQuestion(ctx, p.s, p.sk, questionType, skill.Medium)
	} else {
		q, err = p.svc.StartPractice(ctx, p.s, p.sk)
	}
	if err != nil {
		return err
	}
	p.printQuestion(q)
	return nil
}

func (p *practiceLoop) answer(ctx context.Context, text string) error {
	out, err := p.svc.SubmitAnswer(ctx, p.s, text)
	if err != nil {
		return err
	}
	if out.CorrectAnswer == "" {
		fmt.Fprintln(p.out, theme.Neutral.Render("Response recorded. Open-ended answers are not graded."))
	} else {
		fmt.Fprintln(p.out, theme.Verdict(out.Correct))
		if !out.Correct {
			fmt.Fprintln(p.out, theme.Body.Render("Answer: "+out.CorrectAnswer))
		}
	}
	if out.Explanation != "" {
		fmt.Fprintln(p.out, theme.Hint.Render(out.Explanation))
	}
	fmt.Fprintln(p.out)
	return p.next(ctx, "")
}

func (p *practiceLoop) printQuestion(q question.Question) {
	var b strings.Builder
	b.WriteString(theme.Label.Render(fmt.Sprintf("%s · %s · %s", q.Skill.DisplayName(), q.Type, q.Difficulty)))
	b.WriteString("\n")
	if q.Passage != "" {
		b.WriteString(theme.Subtitle.Render(q.Passage))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Body.Render(q.Prompt))
	for _, c := range q.Choices {
		b.WriteString("\n  ")
		b.WriteString(c)
	}
	if q.TranslatedPrompt != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Render(q.TranslatedPrompt))
	}
	fmt.Fprintln(p.out, theme.Card.Render(b.String()))
}

func (p *practiceLoop) printScore() {
	proj := p.svc.Projection(p.s)
	fmt.Fprintln(p.out, theme.Title.Render("Projected bands"))
	for _, sb := range proj.Bands {
		fmt.Fprintf(p.out, "  %-10s %s %s\n", sb.Skill.DisplayName(), theme.Bar(sb.Band/9, 20), theme.Band(sb.Band))
	}
	fmt.Fprintf(p.out, "  %-10s %s\n", "Overall", theme.Band(proj.OverallBand))
}
