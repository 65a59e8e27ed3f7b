package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateRecipes
	stateDetail
)

type RootModel struct {
	State    state
	Client   *Client
	User     string
	Login    LoginModel
	Recipes  RecipesModel
	Detail   RecipeDetailModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel(c *Client) RootModel {
	return RootModel{
		State:  stateLogin,
		Client: c,
		Login:  NewLoginModel(c),
		width:  80,
		height: 24,
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		switch m.State {
		case stateRecipes:
			m.Recipes.Table.SetHeight(max(msg.Height-10, 5))
		case stateDetail:
			m.Detail.Body.Width = max(msg.Width-4, 40)
			m.Detail.Body.Height = max(msg.Height-10, 8)
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}

	case loginResultMsg:
		if msg.Err == nil {
			m.User = msg.User.UserName
			m.State = stateRecipes
			m.Recipes = NewRecipesModel(m.Client, m.height)
			return m, m.Recipes.Init()
		}

	case logoutMsg:
		m.User = ""
		m.State = stateLogin
		m.Login = NewLoginModel(m.Client)
		m.Login.Err = msg.Err
		return m, m.Login.Init()

	case RecipeSelectedMsg:
		m.State = stateDetail
		m.Detail = NewRecipeDetailModel(m.Client, msg.ID, m.width, m.height)
		return m, m.Detail.Init()

	case BackToRecipesMsg:
		m.State = stateRecipes
		return m, m.Recipes.loadCmd()
	}

	var cmd tea.Cmd
	switch m.State {
	case stateLogin:
		m.Login, cmd = m.Login.Update(msg)
	case stateRecipes:
		m.Recipes, cmd = m.Recipes.Update(msg)
	case stateDetail:
		m.Detail, cmd = m.Detail.Update(msg)
	}
	return m, cmd
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateRecipes:
		return m.Recipes.View() + "\n" + blurredStyle.Render("logged in as "+m.User)
	case stateDetail:
		return m.Detail.View()
	}
	return "Unknown state"
}
