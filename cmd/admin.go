package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"yournews/models"
	"yournews/repositories"
	"yournews/services"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	createAdminCommand := &cobra.Command{
		Use:   "create-admin [username] [email] [password]",
		Short: "Create an admin account",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 3 {
				fmt.Printf("You must provide a username, an email and a password.\n\n")
				cmd.Usage()
				os.Exit(1)
			}

			cfg := loadConfig()
			userRepo := repositories.NewUserRepository(openDB(cfg))
			ctx := context.Background()

			if _, err := userRepo.GetByUsername(ctx, args[0]); err == nil {
				fmt.Printf("User '%s' already exists\n", args[0])
				os.Exit(1)
			}

			hashed, err := bcrypt.GenerateFromPassword([]byte(args[2]), bcrypt.DefaultCost)
			if err != nil {
				panic(err)
			}

			user := &models.User{
				Username: args[0],
				Email:    args[1],
				Password: string(hashed),
				Role:     models.RoleAdmin,
			}
			if err := userRepo.Create(ctx, user); err != nil {
				panic(err)
			}

			fmt.Printf("Created admin '%s' with id %d\n", user.Username, user.ID)
		},
	}
	RootCommand.AddCommand(createAdminCommand)

	createTokenCommand := &cobra.Command{
		Use:   "create-token [username]",
		Short: "Issue a bearer token for an existing user",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 {
				fmt.Printf("You must provide a username.\n\n")
				cmd.Usage()
				os.Exit(1)
			}

			cfg := loadConfig()
			userRepo := repositories.NewUserRepository(openDB(cfg))
			authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiration)

			user, err := userRepo.GetByUsername(context.Background(), args[0])
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					fmt.Printf("User '%s' not found\n", args[0])
					os.Exit(1)
				}
				panic(err)
			}

			token, err := authService.IssueToken(user)
			if err != nil {
				panic(err)
			}
			fmt.Println(token)
		},
	}
	RootCommand.AddCommand(createTokenCommand)
}
