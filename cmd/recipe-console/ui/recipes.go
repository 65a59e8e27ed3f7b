package ui

import (
	"context"
	"strconv"
	"strings"

	"recipe-book/backend/app/dto"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RecipesModel lists recipes, optionally filtered by keywords.
type RecipesModel struct {
	Client    *Client
	Table     table.Model
	Filter    textinput.Model
	Filtering bool
	Recipes   []dto.RecipeResponse
	Err       error
}

type recipesLoadedMsg struct {
	Recipes []dto.RecipeResponse
	Err     error
}

type RecipeSelectedMsg struct {
	ID uint
}

type logoutMsg struct{ Err error }

func NewRecipesModel(c *Client, height int) RecipesModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Recipe", Width: 30},
			{Title: "Author", Width: 15},
			{Title: "Keywords", Width: 35},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 5)),
	)
	t.SetStyles(tableStyles())

	f := textinput.New()
	f.Prompt = "Keywords: "
	f.Placeholder = "vegan,quick"

	return RecipesModel{Client: c, Table: t, Filter: f}
}

func (m RecipesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m RecipesModel) loadCmd() tea.Cmd {
	c, filter := m.Client, m.Filter.Value()
	return func() tea.Msg {
		recipes, err := c.Recipes(context.Background(), filter)
		return recipesLoadedMsg{Recipes: recipes, Err: err}
	}
}

func (m RecipesModel) logoutCmd() tea.Cmd {
	c := m.Client
	return func() tea.Msg {
		return logoutMsg{Err: c.Logout(context.Background())}
	}
}

func (m RecipesModel) Update(msg tea.Msg) (RecipesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case recipesLoadedMsg:
		m.Err = msg.Err
		if msg.Err == nil {
			m.Recipes = msg.Recipes
			m.Table.SetRows(recipeRows(msg.Recipes))
		}
		return m, nil

	case tea.KeyMsg:
		if m.Filtering {
			switch msg.Type {
			case tea.KeyEnter:
				m.Filtering = false
				m.Filter.Blur()
				m.Table.Focus()
				return m, m.loadCmd()
			case tea.KeyEsc:
				m.Filtering = false
				m.Filter.Blur()
				m.Table.Focus()
				return m, nil
			}
			var cmd tea.Cmd
			m.Filter, cmd = m.Filter.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "/":
			m.Filtering = true
			m.Table.Blur()
			return m, m.Filter.Focus()
		case "r":
			return m, m.loadCmd()
		case "l":
			return m, m.logoutCmd()
		case "enter":
			if row := m.Table.SelectedRow(); len(row) > 0 {
				id, err := strconv.ParseUint(row[0], 10, 64)
				if err == nil {
					return m, func() tea.Msg { return RecipeSelectedMsg{ID: uint(id)} }
				}
			}
		case "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func recipeRows(recipes []dto.RecipeResponse) []table.Row {
	rows := make([]table.Row, 0, len(recipes))
	for _, r := range recipes {
		keywords := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			keywords = append(keywords, k.Keyword)
		}
		rows = append(rows, table.Row{
			strconv.FormatUint(uint64(r.ID), 10),
			r.RecipeName,
			r.Author.UserName,
			strings.Join(keywords, ", "),
		})
	}
	return rows
}

func (m RecipesModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recipes") + "\n\n")
	b.WriteString(m.Filter.View() + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("'/' filter, 'r' refresh, enter open, 'l' log out, 'q' quit"))

	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
