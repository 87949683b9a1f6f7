package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"article_studio/internal/domain"
	"article_studio/internal/identity"
	"article_studio/internal/library"
	"article_studio/internal/render"
	"article_studio/internal/storage/postgres"
)

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func (a *app) Run(ctx context.Context, command string, args []string) error {
	if err := a.ready(ctx); err != nil {
		return err
	}

	switch command {
	case "login":
		return a.login(ctx, args)
	case "signup":
		return a.signup(ctx, args)
	case "logout":
		return a.gate.SignOut(ctx)
	case "whoami":
		return a.whoami()
	case "generate":
		return a.generate(ctx, args)
	case "articles":
		return a.articles(ctx, args)
	case "view":
		return a.view(ctx, args)
	case "download":
		return a.download(ctx, args)
	case "delete":
		return a.deleteArticle(ctx, args)
	case "sources":
		return a.sources(ctx, args)
	case "style":
		return a.style(ctx, args)
	case "admin":
		return a.adminCommand(ctx, args)
	case "history":
		return a.history(ctx, args)
	}
	return errUsage
}

func (a *app) login(ctx context.Context, args []string) error {
	email, password, err := credentialsFlags("login", args)
	if err != nil {
		return err
	}

	s, err := a.gate.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "signed in as %s\n", s.User.Email)
	return nil
}

func (a *app) signup(ctx context.Context, args []string) error {
	email, password, err := credentialsFlags("signup", args)
	if err != nil {
		return err
	}

	s, err := a.gate.SignUp(ctx, email, password)
	if errors.Is(err, identity.ErrConfirmationRequired) {
		fmt.Fprintln(a.stdout, "Please check your email for verification link")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "signed up as %s\n", s.User.Email)
	return nil
}

func credentialsFlags(name string, args []string) (email, password string, err error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&email, "email", "", "account email")
	fs.StringVar(&password, "password", os.Getenv("STUDIO_PASSWORD"), "account password (or STUDIO_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return "", "", errUsage
	}
	if email == "" || password == "" {
		return "", "", &domain.ValidationError{Code: "MissingCredentials", Field: "email", Message: "email and password are required"}
	}
	return email, password, nil
}

func (a *app) whoami() error {
	s := a.gate.Current()
	if s == nil {
		fmt.Fprintln(a.stdout, "not signed in")
		return nil
	}
	role := s.User.Role
	if role == "" {
		role = "user"
	}
	fmt.Fprintf(a.stdout, "%s (%s)\n", s.User.Email, role)
	return nil
}

func (a *app) generate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	topic := fs.String("topic", "", "article topic")
	format := fs.String("format", string(domain.OutputDetailed), "detailed, summarized or points")
	save := fs.Bool("save", false, "save the article to the output directory")
	html := fs.Bool("html", false, "print rendered HTML instead of the raw article")
	copyOut := fs.Bool("copy", false, "copy the article to the clipboard")
	var urls stringList
	fs.Var(&urls, "url", "source URL (repeatable)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *topic == "" && fs.NArg() > 0 {
		*topic = strings.Join(fs.Args(), " ")
	}

	if a.cfg.Poll.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Poll.Timeout)
		defer cancel()
	}

	artifact, err := a.generator.Generate(ctx, *topic, urls, domain.OutputFormat(*format), func(u domain.ProgressUpdate) {
		fmt.Fprintf(a.stderr, "[%3d%%] %s\n", u.Progress, u.Message)
	})
	if err != nil {
		return err
	}

	view, err := a.renderer.RenderArtifact(artifact)
	if err != nil {
		return err
	}

	if err := a.printView(view, *html); err != nil {
		return err
	}
	if *save {
		path, err := render.Download(a.saver, view, "", *topic)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stderr, "saved", path)
	}
	if *copyOut {
		if err := render.Copy(a.clipboard, view); err != nil {
			return err
		}
		fmt.Fprintln(a.stderr, "copied to clipboard")
	}
	return nil
}

func (a *app) printView(view render.View, html bool) error {
	text := view.Raw
	if html {
		text = view.HTML
	}
	_, err := io.WriteString(a.stdout, strings.TrimRight(text, "\n")+"\n")
	return err
}

func queryFlags(name string, args []string) (library.Query, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	search := fs.String("search", "", "case-insensitive filter")
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return library.Query{}, nil, errUsage
	}
	return library.Query{Search: *search, Page: *page}, fs.Args(), nil
}

func (a *app) articles(ctx context.Context, args []string) error {
	q, _, err := queryFlags("articles", args)
	if err != nil {
		return err
	}

	page, err := a.library.Search(ctx, q)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tFILENAME\tMODIFIED")
	for _, e := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\n", library.DisplayName(e.Filename), e.Filename, e.Modified.Local().Format(time.DateOnly))
	}
	fmt.Fprintf(w, "\npage %d of %d (%d articles)\n", page.Page, page.TotalPages, page.Total)
	return w.Flush()
}

func oneArg(args []string) (string, error) {
	if len(args) != 1 || args[0] == "" {
		return "", errUsage
	}
	return args[0], nil
}

func (a *app) view(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	html := fs.Bool("html", false, "print rendered HTML")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	filename, err := oneArg(fs.Args())
	if err != nil {
		return err
	}

	artifact, err := a.library.View(ctx, filename)
	if err != nil {
		return err
	}
	view, err := a.renderer.RenderArtifact(artifact)
	if err != nil {
		return err
	}
	return a.printView(view, *html)
}

func (a *app) download(ctx context.Context, args []string) error {
	filename, err := oneArg(args)
	if err != nil {
		return err
	}

	path, err := a.library.Download(ctx, filename, a.saver)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, path)
	return nil
}

func (a *app) deleteArticle(ctx context.Context, args []string) error {
	filename, err := oneArg(args)
	if err != nil {
		return err
	}
	if err := a.library.Delete(ctx, filename); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "deleted", filename)
	return nil
}

func (a *app) sources(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "get":
		content, err := a.library.Sources(ctx)
		if err != nil {
			return err
		}
		_, err = io.WriteString(a.stdout, content)
		return err

	case "save":
		draft, err := a.library.EditSources(ctx)
		if err != nil {
			return err
		}
		content, err := readInput(args[1:])
		if err != nil {
			return err
		}
		draft.Edit(content)
		if !draft.HasChanges() {
			fmt.Fprintln(a.stdout, "no changes")
			return nil
		}
		if err := a.library.SaveSources(ctx, draft); err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, "sources saved")
		return nil

	case "clear":
		draft, err := a.library.EditSources(ctx)
		if err != nil {
			return err
		}
		if err := a.library.ClearSources(ctx, draft); err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, "sources cleared")
		return nil
	}
	return errUsage
}

// readInput reads the named file, or stdin when no file (or "-") is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

func (a *app) style(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "get":
		style, err := a.styles.Get(ctx)
		if err != nil {
			return err
		}
		if style.Filename != "" {
			fmt.Fprintf(a.stderr, "sample: %s\n", style.Filename)
		}
		_, err = io.WriteString(a.stdout, style.Content)
		return err

	case "upload":
		path, err := oneArg(args[1:])
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open sample: %w", err)
		}
		defer f.Close()
		if err := a.styles.Upload(ctx, filepath.Base(path), f); err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, "writing style uploaded")
		return nil

	case "clear":
		if err := a.styles.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, "writing style cleared")
		return nil
	}
	return errUsage
}

func (a *app) adminCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	q, rest, err := queryFlags("admin "+args[0], args[1:])
	if err != nil {
		return err
	}

	switch args[0] {
	case "users":
		page, err := a.admin.Users(ctx, q)
		if err != nil {
			return err
		}
		return a.printUsers(page)

	case "articles":
		page, err := a.admin.Articles(ctx, q)
		if err != nil {
			return err
		}
		return a.printAdminArticles(page)

	case "delete-user":
		id, err := oneArg(rest)
		if err != nil {
			return err
		}
		page, err := a.admin.DeleteUser(ctx, id, q)
		if err != nil {
			return err
		}
		return a.printUsers(page)

	case "delete-article":
		id, err := oneArg(rest)
		if err != nil {
			return err
		}
		page, err := a.admin.DeleteArticle(ctx, id, q)
		if err != nil {
			return err
		}
		return a.printAdminArticles(page)
	}
	return errUsage
}

func (a *app) printUsers(page library.Page[domain.AdminUser]) error {
	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tROLE\tCREATED\tLAST SIGN-IN")
	for _, u := range page.Items {
		last := "never"
		if u.LastSignInAt != nil {
			last = u.LastSignInAt.Local().Format(time.DateTime)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Email, u.Role, u.CreatedAt.Local().Format(time.DateOnly), last)
	}
	fmt.Fprintf(w, "\npage %d of %d (%d users)\n", page.Page, page.TotalPages, page.Total)
	return w.Flush()
}

func (a *app) printAdminArticles(page library.Page[domain.AdminArticle]) error {
	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tFILENAME\tOWNER\tCREATED")
	for _, ar := range page.Items {
		title := ar.Title
		if title == "" {
			title = library.DisplayName(ar.Filename)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", ar.ID, title, ar.Filename, ar.UserEmail, ar.CreatedAt.Local().Format(time.DateOnly))
	}
	fmt.Fprintf(w, "\npage %d of %d (%d articles)\n", page.Page, page.TotalPages, page.Total)
	return w.Flush()
}

func (a *app) history(ctx context.Context, args []string) error {
	if a.jobs == nil {
		return errors.New("job history needs database.enabled in the config")
	}

	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	status := fs.String("status", "", "pending, completed or failed")
	limit := fs.Uint64("limit", 20, "maximum rows")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	records, err := a.jobs.List(ctx, postgres.JobFilter{Status: domain.JobStatus(*status), Limit: *limit})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "JOB\tSTATUS\tSUBMITTED\tREQUEST\tRESULT")
	for _, r := range records {
		request := r.Topic
		if len(r.URLs) > 0 {
			request = fmt.Sprintf("%s (%d urls)", domain.GenerationRequest{Topic: r.Topic, URLs: r.URLs}.Label(), len(r.URLs))
		}
		result := ""
		switch {
		case r.Filename != nil:
			result = *r.Filename
		case r.Error != nil:
			result = *r.Error
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.JobID, r.Status, r.SubmittedAt.Local().Format(time.DateTime), request, result)
	}
	return w.Flush()
}

// userMessage picks the text to show for a failed command.
func userMessage(err error) string {
	var (
		submission *domain.SubmissionError
		failed     *domain.JobFailedError
		authErr    *domain.AuthError
		transport  *domain.TransportError
		validation *domain.ValidationError
	)
	switch {
	case errors.As(err, &submission):
		return submission.Message
	case errors.As(err, &failed):
		return failed.Message
	case errors.As(err, &authErr):
		return authErr.Message
	case errors.As(err, &transport):
		return transport.Message
	case errors.As(err, &validation):
		return validation.Message
	}
	return err.Error()
}
