package engine

// Registers the wgpu-backed accelerator with gg. When no compatible GPU is
// present the registration is skipped and contexts fall back to the CPU
// rasterizer on their own.
import _ "github.com/gogpu/gg/gpu"
