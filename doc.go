// Package swarmdrop 提供 SwarmDrop 节点运行时
//
// SwarmDrop 运行时管理一个 P2P 节点会话，把节点事件转发给宿主，
// 并通过平台凭据存储保存少量机密（设备身份、配对令牌等）。
//
// # 核心概念
//
//   - App: 应用上下文，宿主交互的主入口
//   - Session: 同一时刻最多一个的活跃节点会话（引擎客户端 + 事件桥接 + 配对管理器）
//   - Credential Gateway: 固定命名空间 com.gy.swarmdrop 下的 get/set/delete
//
// # 快速开始
//
//	app, err := swarmdrop.New(
//	    swarmdrop.WithConfigFile("swarmdrop.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer app.Close(context.Background())
//
//	// 1. 加载或生成设备身份
//	if _, err := app.LoadOrCreateIdentity(); err != nil {
//	    log.Fatal(err)
//	}
//
//	// 2. 启动会话，事件写入 sink
//	events := sink.NewChannel(64)
//	status, err := app.Start(ctx, events)
//
//	// 3. 凭据读写
//	_ = app.CredentialSet("token", "abc")
//	value, found, err := app.CredentialGet("token")
//
// # 层次结构
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│  入口层      swarmdrop.App                                        │
//	├─────────────────────────────────────────────────────────────────┤
//	│  编排层      internal/app（fx 组装、生命周期）                      │
//	├─────────────────────────────────────────────────────────────────┤
//	│  核心层      session · eventbridge · pairing · identity          │
//	│             keyring · host · sink · storage · metrics           │
//	└─────────────────────────────────────────────────────────────────┘
//
// # 并发
//
// App 的所有方法都可以并发调用。Start 会替换当前会话，
// 被替换的会话在新会话安装后关闭；凭据存储在第一次使用时初始化，
// 初始化失败后的所有调用都返回 ErrStoreUnavailable。
package swarmdrop
