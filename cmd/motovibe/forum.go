package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/umithief/motovibe6/internal/domain/entity"
	"github.com/umithief/motovibe6/internal/storefront"
	"github.com/umithief/motovibe6/internal/usecase"
)

func forumCmd(sh *shell) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forum",
		Short: "Community board",
	}

	cmd.AddCommand(forumTopicsCmd(sh))
	cmd.AddCommand(forumPostCmd(sh))
	cmd.AddCommand(forumCommentCmd(sh))
	cmd.AddCommand(forumLikeCmd(sh))
	cmd.AddCommand(forumReadCmd(sh))

	return cmd
}

func forumTopicsCmd(sh *shell) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List topics, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sh.app.Navigate(storefront.ViewForum)

			topics, err := sh.backend.ListTopics(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, t := range topics {
				fmt.Fprintf(out, "%s  [%s] %s\n", t.ID, t.Category, t.Title)
				fmt.Fprintf(out, "    %s · %s · ♥ %d · 👁 %d · 💬 %d\n",
					t.AuthorName, t.Date.Format("02.01.2006"), t.Likes, t.Views, len(t.Comments))
			}

			return nil
		},
	}
}

func parseTopicID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid topic id %q", raw)
	}

	return id, nil
}

func forumReadCmd(sh *shell) *cobra.Command {
	return &cobra.Command{
		Use:   "read [topicID]",
		Short: "Read a topic and its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTopicID(args[0])
			if err != nil {
				return err
			}

			topics, err := sh.backend.ListTopics(cmd.Context())
			if err != nil {
				return err
			}

			for _, t := range topics {
				if t.ID != id {
					continue
				}
				if err := sh.backend.ViewTopic(cmd.Context(), id); err != nil {
					sh.logger.Debug("Failed to count topic view", slog.Any("error", err))
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s\n%s · %s\n\n%s\n", t.Title, t.AuthorName, t.Date.Format("02.01.2006 15:04"), t.Content)
				if len(t.Tags) > 0 {
					fmt.Fprintf(out, "\n#%s\n", strings.Join(t.Tags, " #"))
				}
				for _, c := range t.Comments {
					fmt.Fprintf(out, "\n  %s (%s):\n  %s\n", c.AuthorName, c.Date.Format("02.01.2006 15:04"), c.Content)
				}

				return nil
			}

			return fmt.Errorf("topic %s not found", id)
		},
	}
}

func forumPostCmd(sh *shell) *cobra.Command {
	var (
		input    usecase.CreateTopicInput
		category string
	)

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Open a topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := sh.requireSession(); err != nil {
				return err
			}

			input.Category = entity.ForumCategory(category)
			topic, err := sh.backend.CreateTopic(cmd.Context(), sh.app.Token(), &input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Posted %s\n", topic.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "Topic title")
	cmd.Flags().StringVar(&input.Content, "content", "", "Topic body")
	cmd.Flags().StringVar(&category, "category", string(entity.ForumGeneral), "Genel, Teknik, Gezi, Ekipman or Etkinlik")
	cmd.Flags().StringSliceVar(&input.Tags, "tag", nil, "Tag, repeatable")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func forumCommentCmd(sh *shell) *cobra.Command {
	return &cobra.Command{
		Use:   "comment [topicID] [text]",
		Short: "Reply to a topic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sh.requireSession(); err != nil {
				return err
			}

			id, err := parseTopicID(args[0])
			if err != nil {
				return err
			}

			if _, err := sh.backend.AddComment(cmd.Context(), sh.app.Token(), id, args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Comment added")

			return nil
		},
	}
}

func forumLikeCmd(sh *shell) *cobra.Command {
	return &cobra.Command{
		Use:   "like [topicID]",
		Short: "Like a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTopicID(args[0])
			if err != nil {
				return err
			}

			return sh.backend.LikeTopic(cmd.Context(), id)
		},
	}
}
