package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/instamd/portal-auth/authclient"
	"github.com/instamd/portal-auth/form"
	"github.com/instamd/portal-auth/internal/config"
	"github.com/instamd/portal-auth/loginflow"
	"github.com/instamd/portal-auth/session"
)

// Portal client: the terminal rendition of the login page and the
// protected dashboard. Session state lives in two file slots under the
// session folder; their presence is the only login authority.
func main() {
	cmd := flag.String("cmd", "dashboard", "Command: login|dashboard|logout|whoami")
	email := flag.String("email", "", "Email for login")
	password := flag.String("password", "", "Password for login")
	serverFlag := flag.String("server", "", "Override authentication server base URL")
	flag.Parse()

	cfg := config.New()
	serverURL := cfg.GetServerURL()
	if *serverFlag != "" {
		serverURL = strings.TrimRight(*serverFlag, "/")
	}
	store := session.NewFileStore(cfg.GetDataFolder())

	var err error
	switch *cmd {
	case "login":
		err = loginCommand(serverURL, store, *email, *password)
	case "dashboard":
		err = dashboardCommand(store)
	case "logout":
		err = logoutCommand(store)
	case "whoami":
		err = whoamiCommand(store)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func loginCommand(serverURL string, store session.Store, email, password string) error {
	reader := bufio.NewReader(os.Stdin)
	if email == "" {
		email = prompt(reader, "Email: ")
	}
	if password == "" {
		password = prompt(reader, "Password: ")
	}

	navigated := false
	controller := loginflow.New(authclient.New(serverURL), store, func(route string) {
		navigated = true
	})

	controller.FieldChanged(form.FieldUsername, email)
	controller.FieldChanged(form.FieldPassword, password)
	controller.Submit(context.Background())

	for _, name := range []string{form.FieldUsername, form.FieldPassword} {
		if msg := controller.Form().Error(name); msg != "" {
			fmt.Printf("  %s: %s\n", name, msg)
		}
	}
	if banner := controller.Banner(); banner != "" {
		fmt.Println(banner)
	}
	if !navigated {
		return nil
	}

	fmt.Println("Login Successful")
	return dashboardCommand(store)
}

func dashboardCommand(store session.Store) error {
	guard := session.NewGuard(store, func() {
		fmt.Println("Not signed in - redirecting to the login page.")
		fmt.Println("Run: portal -cmd login")
	})

	if guard.Enter() != session.StateAdmitted {
		return nil
	}

	user := guard.Session().User
	fmt.Printf("Welcome back, %s!\n", user.Name)
	fmt.Println()
	fmt.Println("User Information")
	fmt.Printf("  Name:  %s\n", user.Name)
	fmt.Printf("  Email: %s\n", user.Email)
	fmt.Printf("  Role:  %s\n", user.Role)
	fmt.Println()
	fmt.Println("Navigation: Dashboard | Appointments | Medical Records")
	return nil
}

func logoutCommand(store session.Store) error {
	redirected := false
	guard := session.NewGuard(store, func() {
		redirected = true
	})

	if guard.Enter() == session.StateAdmitted {
		if err := guard.Logout(); err != nil {
			return err
		}
	}
	if redirected {
		fmt.Println("Signed out.")
	}
	return nil
}

func whoamiCommand(store session.Store) error {
	sess, err := store.Load()
	if err != nil {
		return err
	}
	if sess == nil {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("%s <%s> (%s)\n", sess.User.Name, sess.User.Email, sess.User.Role)
	return nil
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
