package main

import (
	"context"
	"log"
	"os"

	"github.com/YogendraNeeladri/CipherStudio/config"
	"github.com/YogendraNeeladri/CipherStudio/internal/studio"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: studio <list|remote-list|create|save|pull|delete|rename|add|write|rm|show>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ws, err := studio.NewWorkspace(
		studio.NewFileStore(cfg.Client.DataDir),
		studio.NewClient(cfg.Client.APIBaseURL),
		studio.DefaultCatalog(),
	)
	if err != nil {
		log.Fatalf("workspace: %v", err)
	}

	ctx := context.Background()
	api := studio.NewClient(cfg.Client.APIBaseURL)

	switch os.Args[1] {
	case "list":
		for _, p := range ws.Projects() {
			log.Printf("%s  %-24s  files=%d  updated=%s", p.ProjectID, p.Name, len(p.Files), p.UpdatedAt.Format(timeLayout))
		}
	case "remote-list":
		projects, err := api.List(ctx)
		if err != nil {
			log.Fatalf("remote-list: %v", err)
		}
		for _, p := range projects {
			log.Printf("%s  %-24s  files=%d  updated=%s", p.ProjectID, p.Name, len(p.Files), p.UpdatedAt.Format(timeLayout))
		}
	case "create":
		requireArgs(3, "usage: studio create <name>")
		p, err := ws.CreateProject(os.Args[2])
		if err != nil {
			log.Fatalf("create: %v", err)
		}
		log.Printf("created project %s (%s)", p.Name, p.ProjectID)
	case "save":
		if err := ws.Save(ctx); err != nil {
			log.Fatalf("save failed (local changes kept): %v", err)
		}
		log.Printf("saved project %s", ws.Current().ProjectID)
	case "pull":
		requireArgs(3, "usage: studio pull <projectId>")
		if err := ws.Pull(ctx, os.Args[2]); err != nil {
			log.Fatalf("pull: %v", err)
		}
		log.Printf("pulled project %s", os.Args[2])
	case "delete":
		requireArgs(3, "usage: studio delete <projectId>")
		if err := api.Delete(ctx, os.Args[2]); err != nil {
			log.Fatalf("delete: %v", err)
		}
		log.Printf("deleted project %s", os.Args[2])
	case "rename":
		requireArgs(4, "usage: studio rename <projectId> <name>")
		p, err := api.Rename(ctx, os.Args[2], os.Args[3])
		if err != nil {
			log.Fatalf("rename: %v", err)
		}
		log.Printf("renamed project %s to %q", p.ProjectID, p.Name)
	case "add":
		requireArgs(3, "usage: studio add <fileName>")
		if err := ws.AddFile(os.Args[2]); err != nil {
			log.Fatalf("add: %v", err)
		}
	case "write":
		requireArgs(4, "usage: studio write <fileName> <code>")
		if err := ws.UpdateFile(os.Args[2], os.Args[3]); err != nil {
			log.Fatalf("write: %v", err)
		}
	case "rm":
		requireArgs(3, "usage: studio rm <fileName>")
		if err := ws.RemoveFile(os.Args[2]); err != nil {
			log.Fatalf("rm: %v", err)
		}
	case "show":
		p := ws.Current()
		log.Printf("project %s (%s)", p.Name, p.ProjectID)
		for name, f := range p.Files {
			log.Printf("--- %s (%d bytes)", name, len(f.Code))
		}
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}

const timeLayout = "2006-01-02 15:04:05"

func requireArgs(n int, usage string) {
	if len(os.Args) < n {
		log.Fatal(usage)
	}
}
