package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"course_catalog/calculator"
	"course_catalog/client"
	"course_catalog/config"
	"course_catalog/logger"
	"course_catalog/middleware"
	"course_catalog/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

type cli struct {
	app *kingpin.Application

	baseURL *string
	token   *string
	timeout *time.Duration
	verbose *bool

	courseID     *int
	saveID       *int
	saveDesc     *string
	lessonsID    *int
	lessonFilter *string
	lessonSort   *string
	lessonPage   *int
	lessonSize   *int
	addA, addB   *float64
	subA, subB   *float64
	tokenSubject *string
	tokenTTL     *time.Duration
}

func newCLI(cfg *config.Config) *cli {
	app := kingpin.New("coursesctl", "Course catalog API client")
	app.UsageTemplate(kingpin.CompactUsageTemplate)

	c := &cli{app: app}
	c.baseURL = app.Flag("api", "Base URL of the catalog API").Default(cfg.APIBaseURL).String()
	c.token = app.Flag("token", "Bearer token for course updates").Default(cfg.APIToken).String()
	c.timeout = app.Flag("timeout", "Request timeout").Default("30s").Duration()
	c.verbose = app.Flag("verbose", "Log every request").Short('v').Bool()

	app.Command("courses", "List all courses")

	course := app.Command("course", "Show one course")
	c.courseID = course.Arg("id", "Course id").Required().Int()

	save := app.Command("save", "Change the description of a course")
	c.saveID = save.Arg("id", "Course id").Required().Int()
	c.saveDesc = save.Arg("description", "New description").Required().String()

	lessons := app.Command("lessons", "List one page of a course's lessons")
	c.lessonsID = lessons.Arg("courseId", "Course id").Required().Int()
	c.lessonFilter = lessons.Flag("filter", "Text filter on the lesson description").Default("").String()
	c.lessonSort = lessons.Flag("sort", "Sort order by seqNo").Default(string(models.SortAsc)).Enum(string(models.SortAsc), string(models.SortDesc))
	c.lessonPage = lessons.Flag("page", "Page number, from 0").Default("0").Int()
	c.lessonSize = lessons.Flag("size", "Page size").Default("3").Int()

	add := app.Command("add", "Add two numbers")
	c.addA = add.Arg("a", "").Required().Float64()
	c.addB = add.Arg("b", "").Required().Float64()

	sub := app.Command("sub", "Subtract b from a")
	c.subA = sub.Arg("a", "").Required().Float64()
	c.subB = sub.Arg("b", "").Required().Float64()

	token := app.Command("token", "Issue an editor token signed with JWT_SECRET")
	c.tokenSubject = token.Arg("subject", "Who the token is for").Required().String()
	c.tokenTTL = token.Flag("ttl", "Token lifetime").Default("24h").Duration()

	return c
}

func run(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) error {
	c := newCLI(cfg)
	c.app.Writer(stderr)
	c.app.Terminate(nil)

	command, err := c.app.Parse(args)
	if err != nil {
		return err
	}
	// --help already printed usage.
	if command == "" {
		return nil
	}

	log, err := logger.NewWithOutput(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		return err
	}
	if *c.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	switch command {
	case "add":
		calc := calculator.New(logger.WithField(log, "command", "add"))
		return printJSON(stdout, calc.Add(*c.addA, *c.addB))
	case "sub":
		calc := calculator.New(logger.WithField(log, "command", "sub"))
		return printJSON(stdout, calc.Subtract(*c.subA, *c.subB))
	case "token":
		if cfg.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required to issue tokens")
		}
		token, err := middleware.NewTokenService([]byte(cfg.JWTSecret), *c.tokenTTL).GenerateToken(*c.tokenSubject, true)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, token)
		return err
	}

	svc, err := client.NewCoursesService(client.Config{
		BaseURL: *c.baseURL,
		Timeout: *c.timeout,
		Token:   *c.token,
	}, client.WithLogger(log))
	if err != nil {
		return err
	}

	switch command {
	case "courses":
		courses, err := svc.FindAllCourses(ctx)
		if err != nil {
			return err
		}
		return printJSON(stdout, courses)
	case "course":
		course, err := svc.FindCourseByID(ctx, *c.courseID)
		if err != nil {
			return err
		}
		return printJSON(stdout, course)
	case "save":
		course, err := svc.SaveCourse(ctx, *c.saveID, models.DescriptionChange(*c.saveDesc))
		if err != nil {
			return err
		}
		return printJSON(stdout, course)
	case "lessons":
		lessons, err := svc.FindLessons(ctx, *c.lessonsID,
			client.WithFilter(*c.lessonFilter),
			client.WithSortOrder(models.SortOrder(*c.lessonSort)),
			client.WithPage(*c.lessonPage, *c.lessonSize))
		if err != nil {
			return err
		}
		return printJSON(stdout, lessons)
	}
	return fmt.Errorf("unknown command %q", command)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
