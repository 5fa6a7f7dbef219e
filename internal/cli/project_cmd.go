package cli

import (
	"fmt"

	"github.com/alexanderramin/skilltrade/internal/cli/formatter"
	"github.com/alexanderramin/skilltrade/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Browse projects",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectSkillsCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var org, candidate string
	var projectType projectTypeFlag
	var filter domain.ProjectFilter
	var openOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long: "List projects. --search, --type and --skill narrow the open projects;\n" +
			"--org and --candidate narrow by owner or selected candidate.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			filter.Type = domain.ProjectType(projectType)

			var (
				projects []*domain.Project
				err      error
			)
			switch {
			case org != "":
				projects, err = app.Projects.ListByOrganization(ctx, org)
			case candidate != "":
				projects, err = app.Projects.ListByCandidate(ctx, candidate)
			case openOnly:
				projects, err = app.Projects.ListOpen(ctx)
			default:
				projects, err = app.Projects.List(ctx)
			}
			if err != nil {
				return err
			}

			if filter != (domain.ProjectFilter{}) {
				projects = keep(projects, func(p *domain.Project) bool {
					return p.Status == domain.ProjectOpen && p.Matches(filter)
				})
			}
			if org != "" && candidate != "" {
				projects = keep(projects, func(p *domain.Project) bool {
					return p.SelectedCandidateID == candidate
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "Only projects posted by this organization")
	cmd.Flags().StringVar(&candidate, "candidate", "", "Only projects this candidate was selected for")
	cmd.Flags().StringVar(&filter.Search, "search", "", "Open projects whose title or description contains text")
	cmd.Flags().Var(&projectType, "type", "Open projects of this type (micro-internship, project-gig)")
	cmd.Flags().StringVar(&filter.Skill, "skill", "", "Open projects requiring a matching skill")
	cmd.Flags().BoolVar(&openOnly, "open", false, "Only open projects")

	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a project with milestones and applicants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Projects.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			detail := formatter.ProjectDetail{
				Project:    p,
				Candidates: make(map[string]*domain.Candidate),
			}
			if org, err := app.Organizations.GetOrganization(ctx, p.OrganizationID); err == nil {
				detail.Organization = org
			} else if !domain.IsNotFound(err) {
				return err
			}

			ids := []string{p.SelectedCandidateID}
			for _, a := range p.Applicants {
				ids = append(ids, a.CandidateID)
			}
			for _, id := range ids {
				if id == "" || detail.Candidates[id] != nil {
					continue
				}
				c, err := app.Candidates.GetCandidate(ctx, id)
				if err != nil {
					if domain.IsNotFound(err) {
						continue
					}
					return err
				}
				detail.Candidates[id] = c
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectDetail(detail))
			return nil
		},
	}
}

func newProjectSkillsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "List the distinct skills open projects ask for",
		RunE: func(cmd *cobra.Command, args []string) error {
			skills, err := app.Projects.SkillCatalog(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Skills"))
			for _, s := range skills {
				fmt.Fprintln(out, "  "+s)
			}
			return nil
		},
	}
}

// projectTypeFlag rejects unknown project types at parse time.
type projectTypeFlag string

var _ pflag.Value = (*projectTypeFlag)(nil)

func (f *projectTypeFlag) String() string { return string(*f) }

func (f *projectTypeFlag) Set(v string) error {
	if !domain.ValidProjectTypes[v] {
		return fmt.Errorf("invalid project type %q (want micro-internship or project-gig)", v)
	}
	*f = projectTypeFlag(v)
	return nil
}

func (f *projectTypeFlag) Type() string { return "type" }

func keep[T any](items []T, pred func(T) bool) []T {
	out := items[:0:0]
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}
