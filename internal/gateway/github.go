// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/reposcore/reposcore/internal/domain"
)

// ErrIncompleteData marks a collection run that was aborted before all pages
// were fetched. Scores must never be computed from a run that returned this:
// a partial count would silently present an undercount as a final result.
var ErrIncompleteData = errors.New("activity data incomplete")

// Fetcher defines the behavior of a gateway for collecting repository activity.
type Fetcher interface {
	FetchMergedPRs(ctx context.Context, repo string) ([]domain.ActivityEvent, error)
	FetchIssues(ctx context.Context, repo string) ([]domain.ActivityEvent, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// mergedPRQuery fetches author and labels for every merged PR in a repository.
type mergedPRQuery struct {
	Search struct {
		PageInfo struct {
			HasNextPage bool
			EndCursor   githubv4.String
		}
		Edges []struct {
			Node struct {
				Typename    string `graphql:"__typename"`
				PullRequest struct {
					Author struct {
						Login string
					}
					Labels struct {
						Nodes []struct {
							Name string
						}
					} `graphql:"labels(first: 20)"`
				} `graphql:"... on PullRequest"`
			}
		}
	} `graphql:"search(query: $query, type: ISSUE, first: 100, after: $cursor)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// FetchMergedPRs collects one event per matching label on every merged pull
// request in the repository. Unmerged and closed-without-merge PRs earn nothing.
func (g *GitHubGateway) FetchMergedPRs(ctx context.Context, repo string) ([]domain.ActivityEvent, error) {
	g.logger.Println("[1/2] Fetching merged pull requests via GraphQL...")
	query := fmt.Sprintf("repo:%s is:pr is:merged", repo)
	variables := map[string]interface{}{
		"query":  githubv4.String(query),
		"cursor": (*githubv4.String)(nil),
	}

	var events []domain.ActivityEvent
	for {
		var q mergedPRQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("%w: GraphQL search for merged PRs failed: %v", ErrIncompleteData, err)
		}
		for _, edge := range q.Search.Edges {
			if edge.Node.Typename != "PullRequest" {
				continue
			}
			pr := edge.Node.PullRequest
			author := pr.Author.Login
			if author == "" {
				author = "Unknown"
			}
			for _, label := range pr.Labels.Nodes {
				category, ok := domain.CategoryFromLabel(label.Name)
				if !ok {
					continue
				}
				events = append(events, domain.ActivityEvent{
					Participant: author,
					Kind:        domain.KindPullRequest,
					Category:    category,
				})
			}
		}
		if !q.Search.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.Search.PageInfo.EndCursor)
		g.logger.Println("  Fetching next page of merged pull requests...")
	}
	g.logger.Printf("Completed fetching merged pull requests: %d events\n", len(events))
	return events, nil
}

// FetchIssues collects one event per matching label on every counted issue.
// Issues count while open (no state reason), reopened, or completed; issues
// closed as not planned are excluded.
func (g *GitHubGateway) FetchIssues(ctx context.Context, repo string) ([]domain.ActivityEvent, error) {
	g.logger.Println("[2/2] Fetching issues via REST API...")
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	opts := &github.IssueListByRepoOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	var events []domain.ActivityEvent
	for {
		issues, resp, err := g.restClient.Issues.ListByRepo(ctx, owner, name, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to list issues: %v", ErrIncompleteData, err)
		}
		for _, issue := range issues {
			// The issues listing includes PRs; PR credit comes from the
			// GraphQL search, which knows the merge state.
			if issue.IsPullRequest() {
				continue
			}
			if !issueCounts(issue.GetStateReason()) {
				continue
			}
			author := issue.GetUser().GetLogin()
			if author == "" {
				author = "Unknown"
			}
			for _, label := range issue.Labels {
				category, ok := domain.CategoryFromLabel(label.GetName())
				if !ok {
					continue
				}
				events = append(events, domain.ActivityEvent{
					Participant: author,
					Kind:        domain.KindIssue,
					Category:    category,
				})
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of issues...")
	}
	g.logger.Printf("Completed fetching issues: %d events\n", len(events))
	return events, nil
}

// issueCounts reports whether an issue's resolution state earns credit.
func issueCounts(stateReason string) bool {
	switch stateReason {
	case "", "reopened", "completed":
		return true
	}
	return false
}

func splitRepo(repo string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/name", repo)
	}
	return owner, name, nil
}
