package ui

import (
	"context"
	"fmt"
	"strings"

	"recipe-book/backend/app/dto"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// BackToRecipesMsg signals transition back to the recipe list.
type BackToRecipesMsg struct{}

// RecipeDetailModel shows one recipe with its comments and lets a USER
// post a new comment.
type RecipeDetailModel struct {
	Client    *Client
	ID        uint
	Recipe    *dto.RecipeResponse
	Body      viewport.Model
	Comment   textinput.Model
	Composing bool
	Status    string
	Err       error
}

type recipeLoadedMsg struct {
	Recipe *dto.RecipeResponse
	Err    error
}

type commentPostedMsg struct {
	Err error
}

func NewRecipeDetailModel(c *Client, id uint, width, height int) RecipeDetailModel {
	vp := viewport.New(max(width-4, 40), max(height-10, 8))

	ti := textinput.New()
	ti.Prompt = "Comment: "
	ti.CharLimit = 500
	ti.Width = 60

	return RecipeDetailModel{Client: c, ID: id, Body: vp, Comment: ti}
}

func (m RecipeDetailModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m RecipeDetailModel) loadCmd() tea.Cmd {
	c, id := m.Client, m.ID
	return func() tea.Msg {
		r, err := c.Recipe(context.Background(), id)
		return recipeLoadedMsg{Recipe: r, Err: err}
	}
}

func (m RecipeDetailModel) postCmd(text string) tea.Cmd {
	c, id := m.Client, m.ID
	return func() tea.Msg {
		_, err := c.Comment(context.Background(), id, text)
		return commentPostedMsg{Err: err}
	}
}

func (m RecipeDetailModel) Update(msg tea.Msg) (RecipeDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case recipeLoadedMsg:
		m.Err = msg.Err
		if msg.Err == nil {
			m.Recipe = msg.Recipe
			m.Body.SetContent(renderRecipe(msg.Recipe))
		}
		return m, nil

	case commentPostedMsg:
		m.Err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.Status = "comment posted"
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.Composing {
			switch msg.Type {
			case tea.KeyEnter:
				text := m.Comment.Value()
				m.Composing = false
				m.Comment.Blur()
				m.Comment.Reset()
				return m, m.postCmd(text)
			case tea.KeyEsc:
				m.Composing = false
				m.Comment.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.Comment, cmd = m.Comment.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "esc", "backspace":
			return m, func() tea.Msg { return BackToRecipesMsg{} }
		case "c":
			m.Composing = true
			m.Status = ""
			return m, m.Comment.Focus()
		case "r":
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.Body, cmd = m.Body.Update(msg)
	return m, cmd
}

func renderRecipe(r *dto.RecipeResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Recipe:"), r.RecipeName)
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Chef:"), r.Author.UserName)

	b.WriteString(labelStyle.Render("Ingredients") + "\n")
	for _, i := range r.Ingredients {
		fmt.Fprintf(&b, "  - %s\n", i.Ingredient)
	}
	keywords := make([]string, 0, len(r.Keywords))
	for _, k := range r.Keywords {
		keywords = append(keywords, k.Keyword)
	}
	fmt.Fprintf(&b, "\n%s %s\n\n", labelStyle.Render("Keywords:"), strings.Join(keywords, ", "))

	fmt.Fprintf(&b, "%s (%d)\n", labelStyle.Render("Comments"), len(r.Comments))
	for _, c := range r.Comments {
		fmt.Fprintf(&b, "  %s %s\n    %s\n",
			c.Author.UserName,
			blurredStyle.Render(c.Created.Format("2006-01-02 15:04")),
			c.Comment)
	}
	return b.String()
}

func (m RecipeDetailModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Recipe #%d", m.ID)) + "\n\n")
	b.WriteString(m.Body.View())
	b.WriteString("\n\n")
	if m.Composing {
		b.WriteString(m.Comment.View() + "\n")
	}
	b.WriteString(blurredStyle.Render("'c' comment, 'r' reload, esc back"))
	if m.Status != "" {
		b.WriteString("\n" + m.Status)
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
