package main

import (
	"fmt"

	"FitCoach_V0.1/internal/imagelookup"
	"github.com/spf13/cobra"
)

var (
	imageLabel string
	imageType  string
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Print the image lookup URL for an exercise or meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		url := imagelookup.BuildURL(cfg.ImageBaseURL, imagelookup.Query{
			Label: imageLabel,
			Type:  imagelookup.Category(imageType),
		})
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

func init() {
	imageCmd.Flags().StringVar(&imageLabel, "label", "", "Exercise or meal name")
	imageCmd.Flags().StringVar(&imageType, "type", string(imagelookup.CategoryExercise), "exercise or meal")
	_ = imageCmd.MarkFlagRequired("label")

	rootCmd.AddCommand(imageCmd)
}
